package blockchain

import (
	"encoding/binary"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/common/util"
	"github.com/thetatoken/checkpoints/core"
	"github.com/thetatoken/checkpoints/store"
)

var logger *log.Entry = util.GetLoggerForModule("blockchain")

const defaultNodeCacheSize = 4096

var (
	ErrNodeNotFound     = errors.New("block index node not found")
	ErrNodeAlreadyAdded = errors.New("block index node has already been added")
)

// BlockValidator decides whether a block may enter the index.
type BlockValidator interface {
	Verify(height uint64, hash common.Hash) error
}

var _ core.BlockIndex = (*Index)(nil)

// Index is a persistent chain index: it stores block index nodes keyed by
// hash, keeps a by-height index and tracks the tip.
type Index struct {
	store     store.Store
	cache     *lru.Cache
	validator BlockValidator

	tip *core.BlockIndexNode
	mu  *sync.RWMutex
}

// NewIndex creates an Index on top of the given store. A nil validator
// accepts every block. cacheSize <= 0 selects the default cache size.
func NewIndex(store store.Store, validator BlockValidator, cacheSize int) *Index {
	if cacheSize <= 0 {
		cacheSize = defaultNodeCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		logger.Panic(err)
	}

	index := &Index{
		store:     store,
		cache:     cache,
		validator: validator,
		mu:        &sync.RWMutex{},
	}

	var tipHash common.Hash
	if err := store.Get(tipKey(), &tipHash); err == nil {
		tip, err := index.findNode(tipHash)
		if err != nil {
			logger.WithFields(log.Fields{"hash": tipHash.Hex(), "err": err}).Warn("Tip not found in block index")
		} else {
			index.tip = tip
		}
	}
	return index
}

// nodeKey constructs the DB key for the given block hash.
func nodeKey(hash common.Hash) common.Bytes {
	return append(common.Bytes("bn/"), hash[:]...)
}

// blockByHeightIndexKey constructs the DB key for the given block height.
func blockByHeightIndexKey(height uint64) common.Bytes {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, height)
	return append(common.Bytes("bh/"), buf[:n]...)
}

func tipKey() common.Bytes {
	return common.Bytes("tip")
}

type BlockByHeightIndexEntry struct {
	Blocks []common.Hash
}

// AddNode adds a node to the index. Blocks rejected by the validator are not
// added. The node, its height entry and the tip are written in one batch.
func (idx *Index) AddNode(node *core.BlockIndexNode) error {
	if node == nil {
		return errors.New("nil block index node")
	}
	if idx.validator != nil {
		if err := idx.validator.Verify(node.Height, node.Hash); err != nil {
			return err
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, err := idx.findNode(node.Hash); err == nil {
		return errors.Wrap(ErrNodeAlreadyAdded, node.Hash.Hex())
	} else if err != ErrNodeNotFound {
		return errors.Wrapf(err, "failed to look up block index node %v", node.Hash.Hex())
	}

	stored := *node
	batch := store.NewBatch(idx.store)
	if err := batch.Put(nodeKey(node.Hash), stored); err != nil {
		return errors.Wrap(err, "failed to save block index node")
	}
	if err := idx.addBlockByHeightIndex(batch, node.Height, node.Hash); err != nil {
		return err
	}
	newTip := idx.tip == nil || isBetterTip(&stored, idx.tip)
	if newTip {
		if err := batch.Put(tipKey(), node.Hash); err != nil {
			return errors.Wrap(err, "failed to save tip")
		}
	}
	if err := batch.Write(); err != nil {
		return errors.Wrap(err, "failed to write block index batch")
	}

	idx.cache.Add(node.Hash, &stored)
	if newTip {
		idx.tip = &stored
		logger.WithFields(log.Fields{"height": node.Height, "hash": node.Hash.Hex()}).Debug("New tip")
	}
	return nil
}

func isBetterTip(node, tip *core.BlockIndexNode) bool {
	if node.Height != tip.Height {
		return node.Height > tip.Height
	}
	return node.ChainTx > tip.ChainTx
}

func (idx *Index) addBlockByHeightIndex(batch store.Batch, height uint64, hash common.Hash) error {
	key := blockByHeightIndexKey(height)
	entry := BlockByHeightIndexEntry{
		Blocks: []common.Hash{},
	}
	if err := idx.store.Get(key, &entry); err != nil && err != store.ErrKeyNotFound {
		return err
	}

	for _, b := range entry.Blocks {
		if b == hash {
			return nil
		}
	}
	entry.Blocks = append(entry.Blocks, hash)
	return batch.Put(key, entry)
}

// FindNode tries to retrieve the node with the given hash. The returned node
// is shared and must not be modified.
func (idx *Index) FindNode(hash common.Hash) (*core.BlockIndexNode, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.findNode(hash)
}

// findNode is the non-locking version of FindNode.
func (idx *Index) findNode(hash common.Hash) (*core.BlockIndexNode, error) {
	if cached, ok := idx.cache.Get(hash); ok {
		return cached.(*core.BlockIndexNode), nil
	}
	node := &core.BlockIndexNode{}
	if err := idx.store.Get(nodeKey(hash), node); err != nil {
		if err == store.ErrKeyNotFound {
			return nil, ErrNodeNotFound
		}
		return nil, err
	}
	idx.cache.Add(hash, node)
	return node, nil
}

// GetBlockIndexNode implements core.BlockIndex.
func (idx *Index) GetBlockIndexNode(hash common.Hash) (*core.BlockIndexNode, bool) {
	node, err := idx.FindNode(hash)
	if err != nil {
		if err != ErrNodeNotFound {
			logger.WithFields(log.Fields{"hash": hash.Hex(), "err": err}).Error("Failed to read block index")
		}
		return nil, false
	}
	return node, true
}

// FindNodesByHeight returns all nodes at the given height.
func (idx *Index) FindNodesByHeight(height uint64) []*core.BlockIndexNode {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entry := BlockByHeightIndexEntry{
		Blocks: []common.Hash{},
	}
	idx.store.Get(blockByHeightIndexKey(height), &entry)

	ret := []*core.BlockIndexNode{}
	for _, hash := range entry.Blocks {
		node, err := idx.findNode(hash)
		if err == nil {
			ret = append(ret, node)
		}
	}
	return ret
}

// Tip returns the highest node added so far, or nil for an empty index.
func (idx *Index) Tip() *core.BlockIndexNode {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tip
}
