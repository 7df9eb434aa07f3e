package wallet_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/wallet"
)

// personalSign mimics what wallets do for personal_sign: sign the
// EIP-191 prefixed hash and encode the recovery id as 27/28
func personalSign(t *testing.T, message string) (address, signature string) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	return crypto.PubkeyToAddress(key.PublicKey).Hex(), hex.EncodeToString(sig)
}

func TestEthereumProvider_VerifySignature(t *testing.T) {
	message := "Sign in to Dright\nNonce: 9c5f2b6e"
	address, signature := personalSign(t, message)

	p := wallet.NewMetaMaskProvider()

	// Valid signature
	err := p.VerifySignature(context.Background(), address, message, signature, "")
	assert.NoError(t, err)

	// 0x-prefixed signature is accepted
	err = p.VerifySignature(context.Background(), address, message, "0x"+signature, "")
	assert.NoError(t, err)

	// Lowercased address still matches
	err = p.VerifySignature(context.Background(), strings.ToLower(address), message, signature, "")
	assert.NoError(t, err)

	// Signature over a different message recovers a different signer
	err = p.VerifySignature(context.Background(), address, "another challenge", signature, "")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	// Someone else's address
	otherAddress, _ := personalSign(t, message)
	err = p.VerifySignature(context.Background(), otherAddress, message, signature, "")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestEthereumProvider_VerifySignature_InvalidInputs(t *testing.T) {
	p := wallet.NewMetaMaskProvider()

	// Hedera account id on an Ethereum provider
	err := p.VerifySignature(context.Background(), "0.0.12345", "msg", "00", "")
	assert.ErrorContains(t, err, "invalid ethereum address")

	// Garbage signature encoding
	err = p.VerifySignature(context.Background(), "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "msg", "zz-not-hex", "")
	assert.ErrorContains(t, err, "malformed signature")

	// Truncated signature
	err = p.VerifySignature(context.Background(), "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "msg", "abcd", "")
	assert.ErrorContains(t, err, "malformed signature")
}

func TestEthereumProvider_Detect(t *testing.T) {
	t.Run("metamask is always available", func(t *testing.T) {
		p := wallet.NewMetaMaskProvider()
		assert.NoError(t, p.Detect(context.Background()))
	})

	t.Run("walletconnect relay reachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		mockHTTP.
			EXPECT().
			Head(gomock.Any(), "https://relay.walletconnect.com").
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(nil)),
			}, nil)

		p := wallet.NewWalletConnectProvider("https://relay.walletconnect.com", mockHTTP)
		assert.NoError(t, p.Detect(context.Background()))
	})

	t.Run("walletconnect relay down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		mockHTTP.
			EXPECT().
			Head(gomock.Any(), "https://relay.walletconnect.com").
			Return(nil, fmt.Errorf("dial tcp: connection refused"))

		p := wallet.NewWalletConnectProvider("https://relay.walletconnect.com", mockHTTP)
		assert.ErrorContains(t, p.Detect(context.Background()), "unreachable")
	})
}

func TestEthereumProvider_KindAndChain(t *testing.T) {
	metamask := wallet.NewMetaMaskProvider()
	assert.Equal(t, domain.WalletMetaMask, metamask.Kind())
	assert.Equal(t, domain.BlockchainEthereum, metamask.Chain())

	wc := wallet.NewWalletConnectProvider("", nil)
	assert.Equal(t, domain.WalletWalletConnect, wc.Kind())
	assert.Equal(t, domain.BlockchainEthereum, wc.Chain())
}
