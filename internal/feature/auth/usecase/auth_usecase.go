// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"recipe_backend/internal/feature/auth/domain/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// TokenCodec はセッションIDを署名付きトークンへ相互変換します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/token）ではなくコンシューマー（usecase）が定義します。
type TokenCodec interface {
	// Sign は指定されたセッションIDの署名済みトークンを生成します。
	Sign(sessionID string, expiresAt time.Time) (string, error)
	// Verify はトークンの署名を検証し、セッションIDを返します。
	Verify(token string) (string, error)
}

// LoginMeta はセッションに記録するクライアント情報です。
type LoginMeta struct {
	UserAgent string
	IPAddress string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     TokenCodec
	sessionTTL time.Duration
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenCodec, sessionTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// newSessionID は64文字の16進セッションIDを生成します。
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{ID: uuid.NewString(), Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時に署名済みセッショントークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string, meta LoginMeta) (string, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	// サーバ側セッションを作成
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    user.ID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	// クライアントへはセッションIDを署名付きトークンとして渡す
	token, err := u.tokens.Sign(session.ID, session.ExpiresAt)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Resolve はセッショントークンを検証し、対応するユーザーを返します。
// トークン不正・セッション未検出・期限切れの場合はエラーを返します。
func (u *authUsecase) Resolve(ctx context.Context, token string) (*entity.User, error) {
	sessionID, err := u.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		// 期限切れセッションは掃除してから拒否する
		_ = u.sessions.Delete(ctx, session.ID)
		return nil, ErrSessionExpired
	}

	return u.users.FindByID(ctx, session.UserID)
}

// Logout は現在のセッションを無効化します。
// 冪等であり、トークン不正やセッション未検出でもエラーにしません。
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	sessionID, err := u.tokens.Verify(token)
	if err != nil {
		return nil
	}
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return nil
}
