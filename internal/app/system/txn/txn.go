// Package txn runs a function inside a MongoDB multi-document transaction
// when the deployment supports one, and falls back to running the function
// directly when it does not (standalone servers have no transaction
// support; only replica sets and sharded clusters do).
//
// The fallback gives up atomicity but preserves ordering, which is the
// contract the cascade delete relies on: dependents are removed before the
// parent either way.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Run executes fn within a transaction on db's client. If starting the
// session or the transaction fails because the deployment does not support
// transactions, fn is re-run directly on the original context.
func Run(ctx context.Context, db *mongo.Database, log *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := db.Client().StartSession()
	if err != nil {
		if IsNotSupported(err) {
			log.Debug("transactions unsupported, running sequentially", zap.Error(err))
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		log.Debug("transactions unsupported, running sequentially", zap.Error(err))
		return fn(ctx)
	}
	return err
}

// Server error codes that indicate the deployment cannot run transactions.
const (
	codeTransactionNumbers    = 20 // "Transaction numbers are only allowed on..."
	codeIllegalOperation      = 51
	codeOperationNotSupported = 263
)

// IsNotSupported reports whether err indicates that the MongoDB deployment
// does not support multi-document transactions.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case codeTransactionNumbers, codeIllegalOperation, codeOperationNotSupported:
			return true
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "illegal operation") {
		return true
	}
	if strings.Contains(s, "transaction") && strings.Contains(s, "replica set") {
		return true
	}
	if strings.Contains(s, "transaction") && strings.Contains(s, "session") {
		return true
	}
	if strings.Contains(s, "session") && strings.Contains(s, "not supported") {
		return true
	}
	return false
}
