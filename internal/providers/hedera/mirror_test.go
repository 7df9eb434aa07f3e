package hedera_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/providers/hedera"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const mirrorBase = "https://testnet.mirrornode.hedera.com"

// respondJSON unmarshals canned mirror JSON into the client's result value.
func respondJSON(payload string) func(context.Context, string, interface{}) error {
	return func(_ context.Context, _ string, result interface{}) error {
		return json.Unmarshal([]byte(payload), result)
	}
}

func TestMirrorClient_AccountPublicKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := hedera.NewMirrorClient(mirrorBase, mockHTTP)

	mockHTTP.EXPECT().
		Get(gomock.Any(), mirrorBase+"/api/v1/accounts/0.0.12345", gomock.Any()).
		DoAndReturn(respondJSON(`{
			"account": "0.0.12345",
			"key": {"_type": "ED25519", "key": "aabbccdd"}
		}`))

	key, err := client.AccountPublicKey(context.Background(), "0.0.12345")
	require.NoError(t, err)
	assert.Equal(t, "aabbccdd", key)
}

func TestMirrorClient_AccountPublicKey_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := hedera.NewMirrorClient(mirrorBase, mockHTTP)

	t.Run("invalid account ID", func(t *testing.T) {
		_, err := client.AccountPublicKey(context.Background(), "0xnot-hedera")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid Hedera account ID")
	})

	t.Run("keyless account", func(t *testing.T) {
		mockHTTP.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondJSON(`{"account": "0.0.99"}`))

		_, err := client.AccountPublicKey(context.Background(), "0.0.99")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no key on record")
	})

	t.Run("mirror error", func(t *testing.T) {
		mockHTTP.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("unexpected status code 404"))

		_, err := client.AccountPublicKey(context.Background(), "0.0.404")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch account")
	})
}

func TestMirrorClient_NFTInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := hedera.NewMirrorClient(mirrorBase, mockHTTP)

	mockHTTP.EXPECT().
		Get(gomock.Any(), mirrorBase+"/api/v1/tokens/0.0.4521/nfts/7", gomock.Any()).
		DoAndReturn(respondJSON(`{
			"account_id": "0.0.777",
			"token_id": "0.0.4521",
			"serial_number": 7,
			"deleted": false,
			"metadata": "aXBmczovL1FtWHh4",
			"modified_timestamp": "1700000000.000000001"
		}`))

	info, err := client.NFTInfo(context.Background(), "0.0.4521", 7)
	require.NoError(t, err)
	assert.Equal(t, "0.0.777", info.AccountID)
	assert.Equal(t, int64(7), info.Serial)
	assert.False(t, info.Deleted)
}

func TestMirrorClient_NFTTransfers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := hedera.NewMirrorClient(mirrorBase, mockHTTP)

	expected := mirrorBase + "/api/v1/tokens/0.0.4521/nfts/7/transactions?order=asc&timestamp=gt:1700000000.000000001"
	mockHTTP.EXPECT().
		Get(gomock.Any(), expected, gomock.Any()).
		DoAndReturn(respondJSON(`{
			"transactions": [
				{
					"consensus_timestamp": "1700000100.000000001",
					"transaction_id": "0.0.2@1700000099.000000000",
					"type": "CRYPTOTRANSFER",
					"sender_account_id": "0.0.777",
					"receiver_account_id": "0.0.888"
				}
			]
		}`))

	transfers, err := client.NFTTransfers(context.Background(), "0.0.4521", 7, "1700000000.000000001")
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, "CRYPTOTRANSFER", transfers[0].Type)
	assert.Equal(t, "0.0.777", transfers[0].SenderAccountID)
	assert.Equal(t, "0.0.888", transfers[0].ReceiverAccountID)
}

func TestMirrorClient_CollectionSerials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := hedera.NewMirrorClient(mirrorBase, mockHTTP)

	expected := mirrorBase + "/api/v1/tokens/0.0.4521/nfts?order=asc&limit=25&serialnumber=gt:10"
	mockHTTP.EXPECT().
		Get(gomock.Any(), expected, gomock.Any()).
		DoAndReturn(respondJSON(`{
			"nfts": [
				{"token_id": "0.0.4521", "serial_number": 11, "account_id": "0.0.777"},
				{"token_id": "0.0.4521", "serial_number": 12, "account_id": "0.0.888"}
			]
		}`))

	nfts, err := client.CollectionSerials(context.Background(), "0.0.4521", 10, 25)
	require.NoError(t, err)
	require.Len(t, nfts, 2)
	assert.Equal(t, int64(11), nfts[0].Serial)
	assert.Equal(t, "0.0.888", nfts[1].AccountID)
}

func TestMirrorClient_LatestBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := hedera.NewMirrorClient(mirrorBase, mockHTTP)

	t.Run("ok", func(t *testing.T) {
		mockHTTP.EXPECT().
			Get(gomock.Any(), mirrorBase+"/api/v1/blocks?order=desc&limit=1", gomock.Any()).
			DoAndReturn(respondJSON(`{"blocks": [{"number": 123456}]}`))

		block, err := client.LatestBlock(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(123456), block)
	})

	t.Run("empty response", func(t *testing.T) {
		mockHTTP.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondJSON(`{"blocks": []}`))

		_, err := client.LatestBlock(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no blocks")
	})
}
