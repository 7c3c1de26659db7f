package service

import (
	"strings"

	"gorm.io/gorm"
)

// predicate is one optional WHERE condition with bound arguments.
type predicate struct {
	clause string
	args   []interface{}
}

// listQuery collects optional filters in the order they are added and applies
// them as AND conditions, followed by a fixed ordering and optional paging.
// Values always travel as bind arguments.
type listQuery struct {
	predicates []predicate
	orderBy    []string
	limit      int
	offset     int
}

func newListQuery(orderBy ...string) *listQuery {
	return &listQuery{orderBy: orderBy}
}

func (q *listQuery) where(clause string, args ...interface{}) *listQuery {
	q.predicates = append(q.predicates, predicate{clause: clause, args: args})
	return q
}

// whereBool adds clause only when value was supplied.
func (q *listQuery) whereBool(clause string, value *bool) *listQuery {
	if value == nil {
		return q
	}
	return q.where(clause, *value)
}

// whereString adds clause only when value is non-blank.
func (q *listQuery) whereString(clause, value string) *listQuery {
	value = strings.TrimSpace(value)
	if value == "" {
		return q
	}
	return q.where(clause, value)
}

func (q *listQuery) page(limit, offset int) *listQuery {
	q.limit = limit
	q.offset = offset
	return q
}

// filter applies only the predicates, for count queries.
func (q *listQuery) filter(tx *gorm.DB) *gorm.DB {
	for _, p := range q.predicates {
		tx = tx.Where(p.clause, p.args...)
	}
	return tx
}

// apply applies predicates, ordering and paging.
func (q *listQuery) apply(tx *gorm.DB) *gorm.DB {
	tx = q.filter(tx)
	for _, order := range q.orderBy {
		tx = tx.Order(order)
	}
	if q.limit > 0 {
		tx = tx.Limit(q.limit)
	}
	if q.offset > 0 {
		tx = tx.Offset(q.offset)
	}
	return tx
}
