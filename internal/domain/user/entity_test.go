//go:build unit

package user_test

import (
	"testing"

	"reservatenis/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		email, err := user.NewEmail("test@example.com")
		require.NoError(t, err)

		fullName := "Ana García"
		phone := "+54 11 1234-5678"
		actual := user.NewUser(email, "hashed_password", &fullName, &phone, false)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, "hashed_password", actual.PasswordHash())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsAdmin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "有効なメールアドレスOK", email: "valid@example.com"},
			{name: "前後の空白はトリムされる", email: "  valid@example.com  "},
			{name: "空のメールアドレスNG", email: "", errIs: user.ErrInvalidEmail},
			{name: "無効な形式NG", email: "invalid-email", errIs: user.ErrInvalidEmail},
			{name: "@なしNG", email: "invalidemail.com", errIs: user.ErrInvalidEmail},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := user.NewEmail(c.email)
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("パスワード検証", func(t *testing.T) {
		cases := []struct {
			name     string
			password string
			errIs    error
		}{
			{name: "8文字以上OK", password: "password123"},
			{name: "8文字ちょうどOK", password: "12345678"},
			{name: "7文字以下NG", password: "1234567", errIs: user.ErrPasswordTooWeak},
			{name: "空のパスワードNG", password: "", errIs: user.ErrPasswordTooWeak},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := user.NewPassword(c.password)
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("状態遷移", func(t *testing.T) {
		email, _ := user.NewEmail("state@example.com")
		u := user.NewUser(email, "hash", nil, nil, false)

		u.Deactivate()
		assert.False(t, u.IsActive())

		u.Activate()
		assert.True(t, u.IsActive())

		u.SetAdmin(true)
		assert.True(t, u.IsAdmin())
	})

	t.Run("プロフィール更新", func(t *testing.T) {
		email, _ := user.NewEmail("profile@example.com")
		u := user.NewUser(email, "hash", nil, nil, false)

		name := "Luis"
		u.UpdateProfile(&name, nil)
		require.NotNil(t, u.FullName())
		assert.Equal(t, "Luis", *u.FullName())
		assert.Nil(t, u.Phone())
	})
}
