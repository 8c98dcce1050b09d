//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"ride-together/internal/domain/user"
	"ride-together/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewDisplayName("Test Rider")
		expected := user.NewUser(email, name, "hashed_password", time.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, "Test Rider", actual.Name("fallback"))
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字と前後の空白は正規化OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Rider@Example.COM ") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("表示名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空の表示名OK",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName("") },
			},
			{
				name:   "50文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("あ", 50)) },
			},
			{
				name:   "51文字NG",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("a", 51)) },
				errIs:  user.ErrInvalidDisplayName,
			},
		})
	})
}

func TestEmailNormalization(t *testing.T) {
	email, err := user.NewEmail("  Rider@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "rider@example.com", email.Value())
	assert.Equal(t, "rider", email.LocalPart())
}

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "8文字OK", input: "abcdefgh"},
		{name: "72バイトOK", input: strings.Repeat("a", 72)},
		{name: "7文字NG", input: "abcdefg", errIs: user.ErrPasswordTooWeak},
		{name: "73バイトNG", input: strings.Repeat("a", 73), errIs: user.ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewPassword(tt.input)
			if tt.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestResolveDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		email       string
		want        string
	}{
		{name: "表示名を優先", displayName: " Aiko ", email: "aiko@example.com", want: "Aiko"},
		{name: "表示名が空ならメールのローカル部", displayName: "", email: "kenji@example.com", want: "kenji"},
		{name: "どちらも無ければフォールバック", displayName: "  ", email: "", want: "Anonymous Rider"},
		{name: "@始まりのメールはフォールバック", displayName: "", email: "@example.com", want: "Anonymous Rider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, user.ResolveDisplayName(tt.displayName, tt.email, "Anonymous Rider"))
		})
	}
}

func TestFriendship(t *testing.T) {
	now := time.Date(2026, 10, 17, 6, 0, 0, 0, time.UTC)

	t.Run("順序に関係なく同じペア", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()

		f1, err := user.NewFriendship(a, b, now)
		require.NoError(t, err)
		f2, err := user.NewFriendship(b, a, now)
		require.NoError(t, err)

		assert.Equal(t, f1.Low(), f2.Low())
		assert.Equal(t, f1.High(), f2.High())
		assert.Equal(t, b, f1.Other(a))
		assert.Equal(t, a, f1.Other(b))
	})

	t.Run("自分自身NG", func(t *testing.T) {
		id := uuid.New()
		_, err := user.NewFriendship(id, id, now)
		assert.ErrorIs(t, err, user.ErrSelfFriendship)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
