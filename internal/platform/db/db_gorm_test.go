package db

import (
	"testing"

	"recipe_backend/internal/app/config"
)

// TestDSN_TCP はTCP接続用のDSN文字列が正しく生成されることを検証します。
func TestDSN_TCP(t *testing.T) {
	t.Parallel()

	cfg := config.Database{
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "3306",
	}

	dsn := DSN(cfg)

	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestDSN_Instance はUnixソケット接続用のDSN文字列が正しく生成されることを検証します。
func TestDSN_Instance(t *testing.T) {
	t.Parallel()

	cfg := config.Database{
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Instance: "project:region:instance",
	}

	dsn := DSN(cfg)

	expected := "testuser:testpass@unix(/cloudsql/project:region:instance)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestOpenDeferred_UnreachableDB はDBに到達できなくてもハンドルが初期化でき、
// クエリ時に初めてエラーになることを検証します。
func TestOpenDeferred_UnreachableDB(t *testing.T) {
	t.Parallel()

	// 到達不能なアドレス。openDeferredは接続を試みないので成功するはず
	db, err := openDeferred("user:pass@tcp(127.0.0.1:1)/testdb?parseTime=true")
	if err != nil {
		t.Fatalf("expected deferred open to succeed without a reachable DB, got %v", err)
	}
	if db == nil {
		t.Fatal("expected a non-nil handle")
	}

	// 実際のクエリは接続エラーになる
	if err := db.Exec("SELECT 1").Error; err == nil {
		t.Error("expected queries against an unreachable DB to fail")
	}
}

// TestDSN_InstanceTakesPrecedence はInstanceとHost/Portが両方設定されている場合にInstanceが優先されることを検証します。
func TestDSN_InstanceTakesPrecedence(t *testing.T) {
	t.Parallel()

	cfg := config.Database{
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "ignored",
		Port:     "0",
		Instance: "project:region:instance",
	}

	dsn := DSN(cfg)

	expected := "testuser:testpass@unix(/cloudsql/project:region:instance)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}
