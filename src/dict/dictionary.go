package dict

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jonbodner/proteus"
)

// Entry is one persisted pronunciation-derived count.
type Entry struct {
	Word  string `prof:"word"`
	Count int    `prof:"count"`
}

var entryDAO entryDAOImpl

type entryDAOImpl struct {
	Upsert func(ctx context.Context, e proteus.ContextExecutor, word string, count int) (int64, error) `proq:"q:upsert" prop:"word,count"`
	// FindByWord is only intended for testing
	FindByWord func(ctx context.Context, q proteus.ContextQuerier, word string) (Entry, error) `proq:"q:findByWord" prop:"word"`
	All        func(ctx context.Context, q proteus.ContextQuerier) ([]Entry, error)                        `proq:"q:all"`
	Size       func(ctx context.Context, q proteus.ContextQuerier) (int64, error)                         `proq:"q:size"`
}

func init() {
	m := proteus.MapMapper{
		"upsert": `INSERT INTO syllable_count (word, count) VALUES (:word:, :count:)
				   ON CONFLICT(word) DO UPDATE SET count = excluded.count`,
		"findByWord": `SELECT * FROM syllable_count WHERE word = :word:`,
		"all":        `SELECT * FROM syllable_count`,
		"size":       `SELECT COUNT(*) FROM syllable_count`,
	}
	err := proteus.ShouldBuild(context.Background(), &entryDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}

// Dictionary serves syllable counts derived from a pronunciation corpus.
// Counts are persisted in sqlite so the corpus only has to be scanned once,
// and held in memory for lookups.
type Dictionary struct {
	db *sql.DB

	mu     sync.Mutex
	counts map[string]int
}

func New(db *sql.DB) *Dictionary {
	return &Dictionary{db: db}
}

// Load makes the dictionary ready for lookups. The persisted table is
// rebuilt from corpus only when it is empty; the rebuild runs in a single
// transaction and the in-memory index is swapped in only once everything
// succeeded, so a failed load leaves no partial state behind.
func (d *Dictionary) Load(ctx context.Context, corpus io.Reader) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	size, err := entryDAO.Size(ctx, d.db)
	if err != nil {
		return fmt.Errorf("could not size syllable cache: %w", err)
	}
	if size == 0 {
		if err := d.rebuild(ctx, corpus); err != nil {
			return err
		}
	}

	entries, err := entryDAO.All(ctx, d.db)
	if err != nil {
		return fmt.Errorf("could not read syllable cache: %w", err)
	}
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.Word] = e.Count
	}
	d.counts = counts
	return nil
}

func (d *Dictionary) rebuild(ctx context.Context, corpus io.Reader) error {
	counts, err := ParseCorpus(corpus)
	if err != nil {
		return fmt.Errorf("could not parse corpus: %w", err)
	}
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for word, count := range counts {
		if _, err := entryDAO.Upsert(ctx, tx, word, count); err != nil {
			tx.Rollback()
			return fmt.Errorf("could not store count for %s: %w", word, err)
		}
	}
	return tx.Commit()
}

// Count reports the stored syllable count for word, matching against its
// uppercase form. Absence is distinct from a stored zero; callers fall back
// to the heuristic only when the word is absent.
func (d *Dictionary) Count(word string) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	count, ok := d.counts[strings.ToUpper(word)]
	return count, ok
}

// Len reports how many words the dictionary holds.
func (d *Dictionary) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.counts)
}
