package rpc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetatoken/checkpoints/checkpoint"
	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/core"
)

var (
	hashA = common.HexToHash("0xa1")
	hashB = common.HexToHash("0xb2")
)

type testIndex struct {
	core.BlockIndexMap
	tip *core.BlockIndexNode
}

func (ti *testIndex) Tip() *core.BlockIndexNode {
	return ti.tip
}

func newTestServer(t *testing.T, nodes ...*core.BlockIndexNode) *CheckpointRPCServer {
	data, err := core.NewCheckpointData([]core.Checkpoint{
		{Height: 0, BlockHash: hashA},
		{Height: 100, BlockHash: hashB},
	}, 1000, 50, 10)
	require.Nil(t, err)

	now := func() time.Time { return time.Unix(1000+86400, 0) }
	checker := checkpoint.NewChecker(data, checkpoint.DefaultConfig(), checkpoint.WithClock(now))

	index := &testIndex{BlockIndexMap: core.BlockIndexMap{}}
	for _, node := range nodes {
		index.Add(node)
		if index.tip == nil || node.Height > index.tip.Height {
			index.tip = node
		}
	}
	server := NewCheckpointRPCServer(checker, index)
	server.now = now
	return server
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
	ID      json.RawMessage `json:"id"`
}

func call(t *testing.T, server *CheckpointRPCServer, body string) *rpcResponse {
	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	resp := &rpcResponse{}
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), resp), rec.Body.String())
	assert.Equal(t, "2.0", resp.JSONRPC)
	return resp
}

func decodeResult(t *testing.T, resp *rpcResponse, result interface{}) {
	require.Nil(t, resp.Error)
	require.Nil(t, json.Unmarshal(resp.Result, result))
}

func TestGetStatus(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	server := newTestServer(t,
		&core.BlockIndexNode{Height: 0, Hash: hashA},
		&core.BlockIndexNode{Height: 100, ChainTx: 50, Timestamp: 1000, Hash: hashB},
		&core.BlockIndexNode{Height: 160, ChainTx: 80, Timestamp: 1000, Hash: common.HexToHash("0xc3")},
	)
	resp := call(t, server, `{"jsonrpc":"2.0","method":"checkpoint.GetStatus","params":{},"id":1}`)
	assert.Equal(json.RawMessage("1"), resp.ID)

	result := &GetStatusResult{}
	decodeResult(t, resp, result)
	assert.True(result.CheckpointsEnabled)
	assert.Equal(common.JSONUint64(100), result.TotalBlocksEstimate)
	assert.Equal(common.JSONUint64(100), result.LastCheckpointHeight)
	require.NotNil(result.LastCheckpointHash)
	assert.Equal(hashB, *result.LastCheckpointHash)
	assert.Equal(common.JSONUint64(160), result.TipHeight)
	assert.InDelta(0.8, result.VerificationProgress, 1e-9)
	assert.True(result.Syncing)
}

func TestGetStatusEmptyIndex(t *testing.T) {
	assert := assert.New(t)

	server := newTestServer(t)
	result := &GetStatusResult{}
	decodeResult(t, call(t, server, `{"jsonrpc":"2.0","method":"checkpoint.GetStatus","params":[{}],"id":"a"}`), result)
	assert.Nil(result.LastCheckpointHash)
	assert.Nil(result.TipHash)
	assert.Equal(0.0, result.VerificationProgress)
	assert.True(result.Syncing)
}

func TestCheckBlock(t *testing.T) {
	assert := assert.New(t)

	server := newTestServer(t)

	result := &CheckBlockResult{}
	decodeResult(t, call(t, server, `{"jsonrpc":"2.0","method":"checkpoint.CheckBlock","params":{"height":"100","hash":"`+hashB.Hex()+`"},"id":1}`), result)
	assert.True(result.Valid)

	result = &CheckBlockResult{}
	decodeResult(t, call(t, server, `{"jsonrpc":"2.0","method":"checkpoint.CheckBlock","params":[{"height":"100","hash":"`+hashA.Hex()+`"}],"id":2}`), result)
	assert.False(result.Valid)
}

func TestGetVerificationProgress(t *testing.T) {
	assert := assert.New(t)

	node := &core.BlockIndexNode{Height: 60, ChainTx: 30, Hash: common.HexToHash("0x60")}
	server := newTestServer(t, node)

	result := &GetVerificationProgressResult{}
	decodeResult(t, call(t, server, `{"jsonrpc":"2.0","method":"checkpoint.GetVerificationProgress","params":{"hash":"`+node.Hash.Hex()+`"},"id":1}`), result)
	assert.Equal(common.JSONUint64(60), result.Height)
	assert.InDelta(30.0, result.WorkBefore, 1e-9)
	assert.InDelta(70.0, result.WorkAfter, 1e-9)
	assert.InDelta(0.3, result.Progress, 1e-9)

	resp := call(t, server, `{"jsonrpc":"2.0","method":"checkpoint.GetVerificationProgress","params":{"hash":"`+hashB.Hex()+`"},"id":2}`)
	if assert.NotNil(resp.Error) {
		assert.Contains(resp.Error.Message, "is not in the block index")
	}
}

func TestRPCErrors(t *testing.T) {
	assert := assert.New(t)

	server := newTestServer(t)

	resp := call(t, server, `{"jsonrpc":"2.0","method":"checkpoint.Nope","params":{},"id":1}`)
	assert.NotNil(resp.Error)

	// Heights are decimal strings.
	resp = call(t, server, `{"jsonrpc":"2.0","method":"checkpoint.CheckBlock","params":{"height":100},"id":1}`)
	assert.NotNil(resp.Error)
}

func TestIsSyncing(t *testing.T) {
	assert := assert.New(t)

	now := time.Unix(10000, 0)
	assert.True(isSyncing(nil, now))
	assert.True(isSyncing(&core.BlockIndexNode{Timestamp: 10000 - 301}, now))
	assert.False(isSyncing(&core.BlockIndexNode{Timestamp: 10000 - 10}, now))
}

func TestRouter(t *testing.T) {
	assert := assert.New(t)

	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(http.StatusOK, rec.Code)
	assert.Contains(rec.Body.String(), "up and running")

	rec = httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/rpc", nil))
	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))

	resp := call(t, server, `{"jsonrpc":"2.0","method":"checkpoint.GetStatus","params":{},"id":7}`)
	assert.Equal(json.RawMessage("7"), resp.ID)
	assert.Contains(string(resp.Result), `"total_blocks_estimate":"100"`)
}
