// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/luxfi/crowdfund/internal/testutils"
	"github.com/luxfi/crowdfund/pkg/artifact"
	"github.com/luxfi/crowdfund/pkg/config"
	"github.com/luxfi/crowdfund/pkg/constants"
	"github.com/luxfi/crowdfund/pkg/deployer"
	"github.com/luxfi/crowdfund/pkg/key"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/geth/core/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	zeroHash  = "0x0000000000000000000000000000000000000000000000000000000000000000"
	zeroAddr  = "0x0000000000000000000000000000000000000000"
	hardhatAt = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
)

var emptyBloom = "0x" + strings.Repeat("0", 512)

// rpcServer is a JSON-RPC endpoint answering each method with a canned
// result. Unknown methods get a method not found error.
type rpcServer struct {
	*httptest.Server

	mu      sync.Mutex
	results map[string]string
	sent    []string
}

func newRPCServer(t *testing.T, results map[string]string) *rpcServer {
	t.Helper()
	s := &rpcServer{results: results}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *rpcServer) serve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     json.RawMessage   `json:"id"`
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	s.mu.Lock()
	result, ok := s.results[req.Method]
	if req.Method == "eth_sendRawTransaction" && len(req.Params) == 1 {
		var raw string
		if err := json.Unmarshal(req.Params[0], &raw); err == nil {
			s.sent = append(s.sent, raw)
		}
	}
	s.mu.Unlock()

	if !ok {
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"method not found"}}`, req.ID)
		return
	}
	fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, req.ID, result)
}

func (s *rpcServer) set(method, result string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[method] = result
}

func (s *rpcServer) sentTxs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

// chainIDServer answers eth_chainId with [chainID] and rejects everything else.
func chainIDServer(t *testing.T, chainID int64) *rpcServer {
	return newRPCServer(t, map[string]string{
		"eth_chainId": fmt.Sprintf(`"0x%x"`, chainID),
	})
}

// devnetServer behaves like a London chain that mines every transaction
// into block 1 and reports [contract] as created by it.
func devnetServer(t *testing.T, chainID int64, contract string) *rpcServer {
	header := fmt.Sprintf(`{"parentHash":%[1]q,"sha3Uncles":%[1]q,"miner":%[2]q,"stateRoot":%[1]q,`+
		`"transactionsRoot":%[1]q,"receiptsRoot":%[1]q,"logsBloom":%[3]q,"difficulty":"0x0",`+
		`"number":"0x1","gasLimit":"0x1c9c380","gasUsed":"0x0","timestamp":"0x0","extraData":"0x",`+
		`"baseFeePerGas":"0x3b9aca00"}`, zeroHash, zeroAddr, emptyBloom)
	receipt := fmt.Sprintf(`{"transactionHash":%[1]q,"blockHash":%[1]q,"blockNumber":"0x1",`+
		`"transactionIndex":"0x0","type":"0x2","status":"0x1","cumulativeGasUsed":"0x1e240",`+
		`"gasUsed":"0x1e240","logsBloom":%[2]q,"logs":[],"contractAddress":%[3]q}`,
		zeroHash, emptyBloom, contract)
	return newRPCServer(t, map[string]string{
		"eth_chainId":               fmt.Sprintf(`"0x%x"`, chainID),
		"eth_getBlockByNumber":      header,
		"eth_maxPriorityFeePerGas":  `"0x3b9aca00"`,
		"eth_estimateGas":           `"0x1e240"`,
		"eth_getTransactionCount":   `"0x0"`,
		"eth_sendRawTransaction":    strconv.Quote(zeroHash),
		"eth_getTransactionReceipt": receipt,
		"eth_getCode":               `"0x6080604052"`,
	})
}

func TestNewClient(t *testing.T) {
	require := require.New(t)
	srv := chainIDServer(t, 31337)
	k, err := key.FromHex(testutils.HardhatKey)
	require.NoError(err)

	c, err := NewClient(context.Background(), zap.NewNop(), config.Network{
		Name:     "localhost",
		URL:      srv.URL,
		ChainID:  31337,
		GasLimit: 3_000_000,
	}, k, Options{})
	require.NoError(err)
	defer c.Close()

	require.EqualValues(31337, c.chainID.Int64())
	require.Equal(key.Address(k), c.opts.From)
	require.EqualValues(3_000_000, c.opts.GasLimit)
}

func TestNewClientChainIDMismatch(t *testing.T) {
	srv := chainIDServer(t, 1)
	k, err := key.FromHex(testutils.HardhatKey)
	require.NoError(t, err)

	_, err = NewClient(context.Background(), zap.NewNop(), config.Network{
		URL:     srv.URL,
		ChainID: 31337,
	}, k, Options{})
	require.ErrorIs(t, err, ErrChainIDMismatch)
}

func TestNewClientWithoutKey(t *testing.T) {
	_, err := NewClient(context.Background(), zap.NewNop(), config.Network{URL: "http://127.0.0.1:1"}, nil, Options{})
	require.ErrorIs(t, err, key.ErrNoKey)
}

func TestDeployMissingArtifact(t *testing.T) {
	require := require.New(t)
	srv := chainIDServer(t, 31337)
	k, err := key.FromHex(testutils.HardhatKey)
	require.NoError(err)

	c, err := NewClient(context.Background(), zap.NewNop(), config.Network{
		URL:          srv.URL,
		ArtifactsDir: t.TempDir(),
	}, k, Options{})
	require.NoError(err)
	defer c.Close()

	_, err = c.DeployContract(context.Background(), "Crowdfunding")
	require.ErrorIs(err, artifact.ErrArtifactNotFound)
}

func TestDeploySubmissionFailure(t *testing.T) {
	require := require.New(t)
	srv := chainIDServer(t, 31337)
	k, err := key.FromHex(testutils.HardhatKey)
	require.NoError(err)
	dir := t.TempDir()
	testutils.WriteHardhatArtifact(t, dir, "Crowdfunding", testutils.StorageBytecode)

	c, err := NewClient(context.Background(), zap.NewNop(), config.Network{
		URL:          srv.URL,
		ArtifactsDir: dir,
	}, k, Options{})
	require.NoError(err)
	defer c.Close()

	// the endpoint only answers eth_chainId, so sending fails
	_, err = c.DeployContract(context.Background(), "Crowdfunding")
	require.ErrorContains(err, "failure deploying Crowdfunding")
	require.ErrorContains(err, "tx failed to be submitted")
}

func TestDeployAndWait(t *testing.T) {
	require := require.New(t)
	srv := devnetServer(t, 31337, hardhatAt)
	k, err := key.FromHex(testutils.HardhatKey)
	require.NoError(err)
	dir := t.TempDir()
	testutils.WriteHardhatArtifact(t, dir, "Crowdfunding", testutils.StorageBytecode)

	c, err := NewClient(context.Background(), zap.NewNop(), config.Network{
		URL:          srv.URL,
		ChainID:      31337,
		ArtifactsDir: dir,
	}, k, Options{})
	require.NoError(err)
	defer c.Close()

	d, err := c.DeployContract(context.Background(), "Crowdfunding")
	require.NoError(err)
	_, err = d.Target()
	require.ErrorIs(err, deployer.ErrNotDeployed)

	sent := srv.sentTxs()
	require.Len(sent, 1)
	tx := new(types.Transaction)
	require.NoError(tx.UnmarshalBinary(hexutil.MustDecode(sent[0])))
	require.Equal(d.(*Deployment).Tx().Hash(), tx.Hash())
	require.Nil(tx.To())
	require.Zero(tx.Nonce())
	require.EqualValues(0x1e240, tx.Gas())
	require.EqualValues(31337, tx.ChainId().Int64())

	require.NoError(d.WaitForDeployment(context.Background()))
	addr, err := d.Target()
	require.NoError(err)
	require.Equal(common.HexToAddress(hardhatAt), addr)
	require.Equal(common.CreateAddress(key.Address(k), 0), addr)
}

func TestRunAgainstDevnet(t *testing.T) {
	require := require.New(t)
	srv := devnetServer(t, 31337, hardhatAt)
	k, err := key.FromHex(testutils.HardhatKey)
	require.NoError(err)
	dir := t.TempDir()
	testutils.WriteHardhatArtifact(t, dir, "Crowdfunding", testutils.StorageBytecode)

	c, err := NewClient(context.Background(), zap.NewNop(), config.Network{
		URL:          srv.URL,
		ArtifactsDir: dir,
		GasLimit:     3_000_000,
	}, k, Options{})
	require.NoError(err)
	defer c.Close()

	var out strings.Builder
	require.NoError(deployer.Run(context.Background(), c, "Crowdfunding", &out))
	require.Equal(fmt.Sprintf(constants.DeployedMessageFormat+"\n", "Crowdfunding", hardhatAt), out.String())
}

func TestWaitWithoutCode(t *testing.T) {
	require := require.New(t)
	srv := devnetServer(t, 31337, hardhatAt)
	srv.set("eth_getCode", `"0x"`)
	k, err := key.FromHex(testutils.HardhatKey)
	require.NoError(err)
	dir := t.TempDir()
	testutils.WriteHardhatArtifact(t, dir, "Crowdfunding", testutils.StorageBytecode)

	c, err := NewClient(context.Background(), zap.NewNop(), config.Network{
		URL:          srv.URL,
		ArtifactsDir: dir,
	}, k, Options{})
	require.NoError(err)
	defer c.Close()

	err = deployer.Run(context.Background(), c, "Crowdfunding", io.Discard)
	require.ErrorIs(err, deployer.ErrDeploymentFailed)
	require.ErrorContains(err, "failure waiting for Crowdfunding deployment")
}
