package auth_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/auth"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/mocks"
)

func TestNonceService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(issuedAt)

	var storedKey, storedValue string
	mockStore.EXPECT().
		SetKeyValue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key, value string) error {
			storedKey = key
			storedValue = value
			return nil
		})

	svc := auth.NewNonceService(mockStore, mockClock, 5*time.Minute)
	challenge, err := svc.Issue(context.Background(), domain.BlockchainHedera, "0.0.12345")
	require.NoError(t, err)

	assert.NotEmpty(t, challenge.Nonce)
	assert.Equal(t, issuedAt.Add(5*time.Minute), challenge.ExpiresAt)
	assert.Contains(t, challenge.Message, "Address: 0.0.12345")
	assert.Contains(t, challenge.Message, "Nonce: "+challenge.Nonce)

	assert.Equal(t, fmt.Sprintf("auth:nonce:hedera:0.0.12345:%s", challenge.Nonce), storedKey)
	assert.Equal(t, issuedAt.Format(time.RFC3339Nano), storedValue)
}

func TestNonceService_Issue_NormalizesEthereumAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	mockClock.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	var storedKey string
	mockStore.EXPECT().
		SetKeyValue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key, _ string) error {
			storedKey = key
			return nil
		})

	svc := auth.NewNonceService(mockStore, mockClock, 5*time.Minute)
	_, err := svc.Issue(context.Background(), domain.BlockchainEthereum, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)

	// Key uses the EIP-55 checksummed form so lookups are case-insensitive.
	assert.True(t, strings.HasPrefix(storedKey, "auth:nonce:ethereum:0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed:"))
}

func TestNonceService_Consume(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		storedValue string
		consumeErr  error
		now         time.Time
		expectedErr error
	}{
		{
			name:        "valid nonce",
			storedValue: issuedAt.Format(time.RFC3339Nano),
			now:         issuedAt.Add(1 * time.Minute),
		},
		{
			name:        "unknown nonce",
			storedValue: "",
			now:         issuedAt,
			expectedErr: domain.ErrInvalidNonce,
		},
		{
			name:        "expired nonce",
			storedValue: issuedAt.Format(time.RFC3339Nano),
			now:         issuedAt.Add(10 * time.Minute),
			expectedErr: domain.ErrInvalidNonce,
		},
		{
			name:        "corrupt stored value",
			storedValue: "not-a-timestamp",
			now:         issuedAt,
			expectedErr: domain.ErrInvalidNonce,
		},
		{
			name:        "store error",
			consumeErr:  fmt.Errorf("connection refused"),
			now:         issuedAt,
			expectedErr: fmt.Errorf("failed to consume nonce: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			mockClock := mocks.NewMockClock(ctrl)

			nonce := "b7c9d8e0-0000-4000-8000-000000000001"
			key := "auth:nonce:hedera:0.0.12345:" + nonce

			mockStore.EXPECT().
				ConsumeKeyValue(gomock.Any(), key).
				Return(tt.storedValue, tt.consumeErr)
			mockClock.EXPECT().Now().Return(tt.now).AnyTimes()

			svc := auth.NewNonceService(mockStore, mockClock, 5*time.Minute)
			message, err := svc.Consume(context.Background(), domain.BlockchainHedera, "0.0.12345", nonce)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, auth.ChallengeMessage("0.0.12345", nonce, issuedAt), message)
		})
	}
}

func TestNonceService_Consume_SecondUseFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	nonce := "b7c9d8e0-0000-4000-8000-000000000002"
	key := "auth:nonce:hedera:0.0.777:" + nonce

	// First consume returns the stored value, second finds nothing.
	gomock.InOrder(
		mockStore.EXPECT().ConsumeKeyValue(gomock.Any(), key).Return(issuedAt.Format(time.RFC3339Nano), nil),
		mockStore.EXPECT().ConsumeKeyValue(gomock.Any(), key).Return("", nil),
	)
	mockClock.EXPECT().Now().Return(issuedAt.Add(time.Second)).AnyTimes()

	svc := auth.NewNonceService(mockStore, mockClock, 5*time.Minute)

	_, err := svc.Consume(context.Background(), domain.BlockchainHedera, "0.0.777", nonce)
	require.NoError(t, err)

	_, err = svc.Consume(context.Background(), domain.BlockchainHedera, "0.0.777", nonce)
	assert.ErrorIs(t, err, domain.ErrInvalidNonce)
}

func TestChallengeMessage(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	message := auth.ChallengeMessage("0.0.12345", "abc", issuedAt)

	assert.Equal(t,
		"Sign this message to authenticate with Dright.\n\nAddress: 0.0.12345\nNonce: abc\nIssued At: 2025-06-01T12:00:00Z",
		message)
}
