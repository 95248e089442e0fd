package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/collectfast-api/pkg/jwt"
)

func TestGenerateParse(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "a@b.com", "accountant", "collectfast", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, role, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "a@b.com", email)
	assert.Equal(t, "accountant", role)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "a@b.com", "founder", "collectfast", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "a@b.com", "founder", "collectfast", 60)
	assert.Error(t, err)
}
