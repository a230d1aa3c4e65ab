package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
)

func observedDBLogger(logQueries bool) (*DatabaseLogger, *observer.ObservedLogs) {
	zapCore, logs := observer.New(zapcore.DebugLevel)
	core := logger.NewZapLoggerWithCore(zapCore, zap.NewAtomicLevelAt(zapcore.DebugLevel))
	l := NewDatabaseLogger(core, timeprovider.NewRealTimeProvider(), logQueries).(*DatabaseLogger)
	return l, logs
}

func TestDatabaseLogger_Trace(t *testing.T) {
	l, logs := observedDBLogger(true)
	ctx := coreport.WithRequestID(context.Background(), "req-1")

	l.Trace(ctx, time.Now(), func() (string, int64) {
		return `SELECT * FROM "users" WHERE email = 'a@x.com'`, 1
	}, nil)

	entries := logs.FilterMessage("SQL Query").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "SELECT", fields["type"])
		assert.Equal(t, "users", fields["table"])
		assert.Equal(t, "req-1", fields["request_id"])
	}
}

func TestDatabaseLogger_QuietModeLogsOnlyErrors(t *testing.T) {
	l, logs := observedDBLogger(false)
	ctx := context.Background()
	query := func() (string, int64) { return "UPDATE users SET balance = 1", 1 }

	l.Trace(ctx, time.Now(), query, nil)
	assert.Equal(t, 0, logs.Len())

	l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	assert.Equal(t, 0, logs.Len())

	l.Trace(ctx, time.Now(), query, errors.New("disk full"))
	assert.Equal(t, 1, logs.FilterMessage("SQL Error").Len())
}

func TestDatabaseLogger_SlowQuery(t *testing.T) {
	l, logs := observedDBLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "INSERT INTO transactions (user_id) VALUES (1)", 1
	}, nil)

	entries := logs.FilterMessage("Slow SQL Query").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "transactions", entries[0].ContextMap()["table"])
	}
}
