package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokens_IssueAndParse(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		issueSecret []byte
		parseSecret []byte
		userID      int
		timeLimit   time.Duration

		expectedErr error
	}

	tests := []testCase{
		{
			name:        "valid token",
			issueSecret: []byte("secret"),
			parseSecret: []byte("secret"),
			userID:      7,
			timeLimit:   DefaultTokenTTL,
		},
		{
			name:        "wrong secret",
			issueSecret: []byte("secret"),
			parseSecret: []byte("other-secret"),
			userID:      7,
			timeLimit:   time.Hour,
			expectedErr: jwt.ErrTokenSignatureInvalid,
		},
		{
			name:        "expired token",
			issueSecret: []byte("secret"),
			parseSecret: []byte("secret"),
			userID:      7,
			timeLimit:   -time.Minute,
			expectedErr: jwt.ErrTokenExpired,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token, err := NewJWTTokenIssuer().IssueToken(tt.issueSecret, tt.userID, tt.timeLimit)
			require.NoError(t, err)

			claims, err := NewJWTTokenParser().ParseToken(tt.parseSecret, token)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, "7", claims.Subject)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now().Add(tt.timeLimit), claims.ExpiresAt.Time, 5*time.Second)
		})
	}
}

func TestJWTTokenParser_RejectsForeignTokens(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1}).SignedString(secret)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"missing expiry": noExpiry,
		"none algorithm": unsigned,
		"garbage":        "not-a-token",
	}

	parser := NewJWTTokenParser()
	for name, token := range tests {
		tokenString := token
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			claims, err := parser.ParseToken(secret, tokenString)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTTokenIssuer_UniqueTokenIDs(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	issuer := NewJWTTokenIssuer()
	parser := NewJWTTokenParser()

	first, err := issuer.IssueToken(secret, 1, time.Hour)
	require.NoError(t, err)
	second, err := issuer.IssueToken(secret, 1, time.Hour)
	require.NoError(t, err)

	firstClaims, err := parser.ParseToken(secret, first)
	require.NoError(t, err)
	secondClaims, err := parser.ParseToken(secret, second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
