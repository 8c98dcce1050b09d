//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"ride-together/internal/domain/auth"
	"ride-together/internal/pkg/clock"
	"ride-together/internal/pkg/jwt"
	"ride-together/internal/pkg/password"
	"ride-together/internal/usecase/commands"
	commandsmock "ride-together/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "password123"

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *memStore
	tokens *commandsmock.MockTokenService
	cmds   commands.AuthCommands
	userID uuid.UUID
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemStore()
	s.tokens = commandsmock.NewMockTokenService(gomock.NewController(s.T()))
	s.cmds = commands.NewAuthCommands(s.store, s.tokens, clock.NewMockClock(testNow))

	hash, err := password.HashPasswordWithCost(testPassword, bcrypt.MinCost)
	s.Require().NoError(err)
	s.userID = s.store.addUser("rider@example.com", "Rider", hash)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) expectTokens(userID any) {
	s.tokens.EXPECT().GenerateAccessToken(userID).Return("access", nil).Times(1)
	s.tokens.EXPECT().GenerateRefreshToken(userID).Return("refresh", nil).Times(1)
}

func (s *AuthCommandsTestSuite) TestSignUp() {
	s.Run("success: stores the user and issues tokens", func() {
		reg, err := auth.NewRegistration("new@example.com", testPassword, "Newbie")
		s.Require().NoError(err)
		s.expectTokens(gomock.Any())

		result, err := s.cmds.SignUp(s.ctx, reg)
		s.Require().NoError(err)
		s.Equal("access", result.TokenPair.AccessToken)

		stored := s.store.users[result.UserID]
		s.Require().NotNil(stored)
		s.Equal("Newbie", stored.DisplayName)
		s.NoError(password.ComparePassword(stored.PasswordHash, testPassword))
	})

	s.Run("error: email taken", func() {
		reg, err := auth.NewRegistration("rider@example.com", testPassword, "")
		s.Require().NoError(err)

		_, err = s.cmds.SignUp(s.ctx, reg)
		assertIs(s.T(), err, commands.ErrEmailTaken)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: records the login", func() {
		creds, err := auth.NewCredentials("Rider@Example.com", testPassword)
		s.Require().NoError(err)
		s.expectTokens(s.userID)

		result, err := s.cmds.Login(s.ctx, creds)
		s.Require().NoError(err)
		s.Equal(s.userID, result.UserID)
		s.Equal("refresh", result.TokenPair.RefreshToken)
		s.Equal(1, s.store.lastLogins[s.userID])
	})

	s.Run("error: wrong password", func() {
		creds, err := auth.NewCredentials("rider@example.com", "wrong-password")
		s.Require().NoError(err)

		_, err = s.cmds.Login(s.ctx, creds)
		assertIs(s.T(), err, commands.ErrInvalidCredentials)
	})

	s.Run("error: unknown email looks the same", func() {
		creds, err := auth.NewCredentials("ghost@example.com", testPassword)
		s.Require().NoError(err)

		_, err = s.cmds.Login(s.ctx, creds)
		assertIs(s.T(), err, commands.ErrInvalidCredentials)
	})

	s.Run("error: token generation", func() {
		creds, err := auth.NewCredentials("rider@example.com", testPassword)
		s.Require().NoError(err)
		s.tokens.EXPECT().GenerateAccessToken(s.userID).Return("", errors.New("signing failed")).Times(1)

		_, err = s.cmds.Login(s.ctx, creds)
		assertIs(s.T(), err, commands.ErrTokenGeneration)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	s.Run("success: rotates both tokens", func() {
		s.tokens.EXPECT().ValidateToken("refresh-token").
			Return(&jwt.Claims{UserID: s.userID, TokenType: jwt.TokenTypeRefresh}, nil).Times(1)
		s.expectTokens(s.userID)

		pair, err := s.cmds.RefreshToken(s.ctx, "refresh-token")
		s.Require().NoError(err)
		s.Equal("access", pair.AccessToken)
	})

	s.Run("error: access token presented", func() {
		s.tokens.EXPECT().ValidateToken("access-token").
			Return(&jwt.Claims{UserID: s.userID, TokenType: jwt.TokenTypeAccess}, nil).Times(1)

		_, err := s.cmds.RefreshToken(s.ctx, "access-token")
		assertIs(s.T(), err, commands.ErrTokenValidation)
	})

	s.Run("error: invalid token", func() {
		s.tokens.EXPECT().ValidateToken("garbage").Return(nil, errors.New("malformed")).Times(1)

		_, err := s.cmds.RefreshToken(s.ctx, "garbage")
		assertIs(s.T(), err, commands.ErrTokenValidation)
	})

	s.Run("error: account deleted", func() {
		s.tokens.EXPECT().ValidateToken("orphan").
			Return(&jwt.Claims{UserID: uuid.New(), TokenType: jwt.TokenTypeRefresh}, nil).Times(1)

		_, err := s.cmds.RefreshToken(s.ctx, "orphan")
		assertIs(s.T(), err, commands.ErrTokenValidation)
	})
}
