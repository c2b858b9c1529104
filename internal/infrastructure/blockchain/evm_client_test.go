package blockchain

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type rpcReq struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      interface{}     `json:"id"`
}

type rpcResp struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func newEVMRPCServer(t *testing.T) *httptest.Server {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("skip: httptest server unavailable in this environment: %v", r)
		}
	}()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req rpcReq
		_ = json.NewDecoder(r.Body).Decode(&req)

		res := rpcResp{JSONRPC: "2.0", ID: req.ID}
		switch req.Method {
		case "eth_chainId":
			res.Result = "0xaa36a7" // Sepolia
		case "eth_getBalance":
			res.Result = "0xde0b6b3a7640000" // 1e18
		case "eth_call":
			// balanceOf selector returns 10 USDC in 6-decimal units
			if strings.Contains(string(req.Params), "70a08231") {
				res.Result = "0x0000000000000000000000000000000000000000000000000000000000989680"
			} else {
				res.Result = "0x1234"
			}
		default:
			res.Result = "0x0"
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}))
}

func TestEVMClient_WithMockRPC(t *testing.T) {
	srv := newEVMRPCServer(t)
	defer srv.Close()

	client, err := NewEVMClient(srv.URL)
	require.NoError(t, err)
	defer client.Close()

	require.Equal(t, big.NewInt(11155111), client.ChainID())

	bal, err := client.GetBalance(context.Background(), "0x3333333333333333333333333333333333333333")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000", bal.String())

	tokenBal, err := client.GetTokenBalance(context.Background(), "0x4444444444444444444444444444444444444444", "0x3333333333333333333333333333333333333333")
	require.NoError(t, err)
	require.Equal(t, "10000000", tokenBal.String())
}

func TestEVMClient_GetTokenBalance_WithCallView(t *testing.T) {
	var gotTo string
	var gotData []byte
	client := NewEVMClientWithCallView(big.NewInt(11155111), func(_ context.Context, to string, data []byte) ([]byte, error) {
		gotTo = to
		gotData = data
		out := make([]byte, 32)
		big.NewInt(25500000).FillBytes(out)
		return out, nil
	})

	bal, err := client.GetTokenBalance(context.Background(), "0x4444444444444444444444444444444444444444", "0x3333333333333333333333333333333333333333")
	require.NoError(t, err)
	require.Equal(t, "25500000", bal.String())
	require.Equal(t, "0x4444444444444444444444444444444444444444", gotTo)
	require.Len(t, gotData, 36)
	require.Equal(t, []byte{0x70, 0xa0, 0x82, 0x31}, gotData[:4])
}

func TestEVMClient_GetTokenBalance_CallError(t *testing.T) {
	client := NewEVMClientWithCallView(big.NewInt(1), func(context.Context, string, []byte) ([]byte, error) {
		return nil, fmt.Errorf("rpc down")
	})

	_, err := client.GetTokenBalance(context.Background(), "0x44", "0x33")
	require.Error(t, err)
}

func TestNewEVMClient_InvalidURL(t *testing.T) {
	_, err := NewEVMClient("://bad-url")
	require.Error(t, err)
}

func TestNewEVMClientWithCallView_DefaultChainID(t *testing.T) {
	client := NewEVMClientWithCallView(nil, func(context.Context, string, []byte) ([]byte, error) {
		return []byte{0x01}, nil
	})
	require.Equal(t, int64(1), client.ChainID().Int64())
}
