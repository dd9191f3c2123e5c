package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/common"
)

func TestAuthService_Login(t *testing.T) {
	client := &fakeAPI{loginUser: &models.User{Username: "tech1", Role: "st", UserCode: "U42"}}
	svc := NewAuthService(client, testLogger())

	user, err := svc.Login(context.Background(), "tech1", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tech1", user.Username)
	assert.Equal(t, "st", user.Role)
	assert.Equal(t, []string{"login:tech1"}, client.recorded())
}

func TestAuthService_LoginRejected(t *testing.T) {
	client := &fakeAPI{loginErr: common.ErrValidation}
	svc := NewAuthService(client, testLogger())

	user, err := svc.Login(context.Background(), "tech1", "wrong")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Nil(t, user)
}
