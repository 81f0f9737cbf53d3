package db

import (
	"sync"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Scope - явная единица работы поверх одной транзакции gorm.
// Ровно один вызов Commit или Rollback; повторный вызов возвращает ошибку.
type Scope struct {
	mu   sync.Mutex
	tx   *gorm.DB
	done bool
}

func Begin() (*Scope, error) {
	return BeginWith(DB)
}

func BeginWith(conn *gorm.DB) (*Scope, error) {
	tx := conn.Begin()
	if tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "ошибка открытия транзакции")
	}
	return &Scope{tx: tx}, nil
}

// TX возвращает транзакцию для создания tx-scoped сторов (NewInstance(scope.TX())).
func (s *Scope) TX() *gorm.DB {
	return s.tx
}

func (s *Scope) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return errors.New("транзакция уже завершена")
	}
	s.done = true
	if err := s.tx.Commit().Error; err != nil {
		return errors.Wrap(err, "ошибка фиксации транзакции")
	}
	return nil
}

func (s *Scope) Rollback() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return errors.New("транзакция уже завершена")
	}
	s.done = true
	if err := s.tx.Rollback().Error; err != nil {
		return errors.Wrap(err, "ошибка отката транзакции")
	}
	return nil
}

// InTx выполняет fn в рамках одной единицы работы:
// ошибка или паника fn откатывает все записи, иначе - фиксация.
func InTx(fn func(tx *gorm.DB) error) error {
	return InTxWith(DB, fn)
}

func InTxWith(conn *gorm.DB, fn func(tx *gorm.DB) error) (err error) {
	scope, err := BeginWith(conn)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = scope.Rollback()
			panic(r)
		}
	}()
	if err = fn(scope.TX()); err != nil {
		if rbErr := scope.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "ошибка отката: %v", rbErr)
		}
		return err
	}
	return scope.Commit()
}
