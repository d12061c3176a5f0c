package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"minima-order/agg-svc/internal/domain"
)

// Store keeps daily popularity and per-table revenue counters in Redis,
// falling back to the orders tables in Postgres when the counters are cold.
type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func popularKey(date string) string {
	return "analytics:popular:" + date
}

func revenueKey(date string, tableNumber int) string {
	return fmt.Sprintf("analytics:revenue:%s:%d", date, tableNumber)
}

// RecordOrder folds one submitted order into today's counters.
func (s *Store) RecordOrder(event domain.OrderEvent) error {
	date := today()

	key := popularKey(date)
	for _, item := range event.Items {
		if item.Quantity <= 0 {
			continue
		}
		if err := s.rdb.ZIncrBy(s.ctx, key, float64(item.Quantity), strconv.Itoa(item.ID)).Err(); err != nil {
			return err
		}
	}
	s.rdb.Expire(s.ctx, key, 7*24*time.Hour)

	revKey := revenueKey(date, event.TableNumber)
	if err := s.rdb.IncrBy(s.ctx, revKey, int64(event.Total)).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, revKey, 7*24*time.Hour)

	return nil
}

// TopToday returns today's most ordered items, best first.
func (s *Store) TopToday(limit int) ([]domain.PopularItem, error) {
	if limit <= 0 {
		limit = 10
	}

	result, err := s.rdb.ZRevRangeWithScores(s.ctx, popularKey(today()), 0, int64(limit-1)).Result()
	if err != nil || len(result) == 0 {
		return s.topTodayFromDB(limit)
	}

	var items []domain.PopularItem
	for _, member := range result {
		itemID, _ := strconv.Atoi(member.Member.(string))
		items = append(items, domain.PopularItem{
			ItemID: itemID,
			Name:   s.itemName(itemID),
			Score:  member.Score,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	return items, nil
}

// itemName resolves a menu item id to its display name from the most recent
// order line that sold it.
func (s *Store) itemName(itemID int) string {
	var name string
	err := s.db.QueryRow(`
		SELECT name FROM order_items
		WHERE item_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, itemID).Scan(&name)
	if err != nil {
		return ""
	}
	return name
}

func (s *Store) topTodayFromDB(limit int) ([]domain.PopularItem, error) {
	rows, err := s.db.Query(`
		SELECT oi.item_id, oi.name, SUM(oi.quantity) AS score
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.created_at::date = CURRENT_DATE
		GROUP BY oi.item_id, oi.name
		ORDER BY score DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PopularItem
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Score); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// TableRevenueToday returns what a table has spent today.
func (s *Store) TableRevenueToday(tableNumber int) (*domain.TableRevenue, error) {
	date := today()
	revenue := &domain.TableRevenue{TableNumber: tableNumber, Date: date}

	value, err := s.rdb.Get(s.ctx, revenueKey(date, tableNumber)).Result()
	if err == nil {
		revenue.Revenue, _ = strconv.Atoi(value)
		return revenue, nil
	}

	err = s.db.QueryRow(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE table_number = $1 AND created_at::date = CURRENT_DATE
	`, tableNumber).Scan(&revenue.Revenue)
	if err != nil {
		return nil, err
	}
	return revenue, nil
}
