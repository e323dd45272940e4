package ledger

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cfjournal/internal/model"
)

// Store keeps every record in memory behind one mutex. The same lock
// covers id assignment and the snapshot write, so ids are strictly
// increasing by insertion order across all owners.
//
// When a snapshot path is configured the whole collection is rewritten
// after each append. A failed write degrades the store to in-memory only
// for that append; it is logged and never surfaced to the user.
type Store struct {
	mu      sync.Mutex
	records []model.TradeRecord
	nextID  int64
	path    string
	log     *zap.Logger
}

// NewStore creates a ledger, loading a previous snapshot if path names
// one. A missing or unreadable snapshot starts an empty ledger.
func NewStore(path string, log *zap.Logger) *Store {
	s := &Store{nextID: 1, path: path, log: log}
	s.load()
	return s
}

func (s *Store) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read trades file, starting empty", zap.String("path", s.path), zap.Error(err))
		}
		return
	}
	var records []model.TradeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("parse trades file, starting empty", zap.String("path", s.path), zap.Error(err))
		return
	}
	s.records = records
	for _, rec := range records {
		if rec.ID >= s.nextID {
			s.nextID = rec.ID + 1
		}
	}
	s.log.Info("loaded trades", zap.String("path", s.path), zap.Int("count", len(records)))
}

// Append assigns the next id and default lifecycle fields, then stores
// the record. Returns the assigned id.
func (s *Store) Append(rec model.TradeRecord) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextID
	s.nextID++
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.Status == "" {
		rec.Status = model.StatusOpen
	}
	s.records = append(s.records, rec)
	s.snapshot()
	return rec.ID
}

// snapshot rewrites the whole collection. Caller holds the lock.
func (s *Store) snapshot() {
	if s.path == "" {
		return
	}
	data, err := json.Marshal(s.records)
	if err != nil {
		s.log.Error("marshal trades", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Error("write trades file, continuing in-memory", zap.String("path", s.path), zap.Error(err))
	}
}

// ListByOwner returns the owner's records in insertion order.
func (s *Store) ListByOwner(owner int64) []model.TradeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.TradeRecord
	for _, rec := range s.records {
		if rec.Owner == owner {
			out = append(out, rec)
		}
	}
	return out
}

// Aggregate computes performance stats for one owner. The bool is false
// when the owner has no records at all.
func (s *Store) Aggregate(owner int64) (Stats, bool) {
	records := s.ListByOwner(owner)
	if len(records) == 0 {
		return Stats{}, false
	}

	stats := Stats{Count: len(records)}
	wins := 0
	for _, rec := range records {
		switch rec.Status {
		case model.StatusClosed:
			stats.ClosedCount++
			if rec.RealizedPnL.IsPositive() {
				wins++
			}
		default:
			stats.OpenCount++
		}
		stats.TotalPnL = stats.TotalPnL.Add(rec.RealizedPnL)
	}
	if stats.ClosedCount > 0 {
		stats.WinRate = float64(wins) / float64(stats.ClosedCount) * 100
	}
	stats.AvgPnL = stats.TotalPnL.Div(decimal.NewFromInt(int64(stats.Count)))
	return stats, true
}

// Len reports the total number of records across all owners.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Owners reports the number of distinct record owners.
func (s *Store) Owners() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{})
	for _, rec := range s.records {
		seen[rec.Owner] = struct{}{}
	}
	return len(seen)
}
