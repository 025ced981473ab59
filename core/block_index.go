package core

import (
	"fmt"

	"github.com/thetatoken/checkpoints/common"
)

// BlockIndexNode is the view of a chain index entry needed by the checkpoint
// logic. Nodes are owned by the chain index.
type BlockIndexNode struct {
	Height    uint64
	Timestamp uint64 // UNIX seconds
	ChainTx   uint64 // Transactions from genesis up to and including this block
	Hash      common.Hash
}

func (n *BlockIndexNode) String() string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprintf("BlockIndexNode{Height: %v, Timestamp: %v, ChainTx: %v, Hash: %v}",
		n.Height, n.Timestamp, n.ChainTx, n.Hash.Hex())
}

// BlockIndex maps block hashes to chain index nodes.
type BlockIndex interface {
	GetBlockIndexNode(hash common.Hash) (*BlockIndexNode, bool)
}

var _ BlockIndex = BlockIndexMap{}

// BlockIndexMap is an in-memory BlockIndex.
type BlockIndexMap map[common.Hash]*BlockIndexNode

// GetBlockIndexNode implements BlockIndex.
func (m BlockIndexMap) GetBlockIndexNode(hash common.Hash) (*BlockIndexNode, bool) {
	node, ok := m[hash]
	return node, ok
}

// Add inserts the node keyed by its hash.
func (m BlockIndexMap) Add(node *BlockIndexNode) {
	m[node.Hash] = node
}
