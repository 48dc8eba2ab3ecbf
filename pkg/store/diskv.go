package store

import (
	"cmp"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/entry"
	"tableflip.dev/hairjourney/pkg/logger"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("store: entry not found")

// Persistence defines the persistence contract for journal records.
type Persistence interface {
	// ListAll returns every record in journal order: created ascending, then ID.
	ListAll(ctx context.Context) []*entry.Entry
	List(ctx context.Context, kind catalog.Category) []*entry.Entry
	Get(ctx context.Context, id string) (*entry.Entry, error)
	Kinds(ctx context.Context) []catalog.Category
	Store(e *entry.Entry) error
	Delete(e *entry.Entry) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load opens the diskv tree at cfg.BasePath. A nil cfg loads the user
// configuration.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		c, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	root := cfg.BasePath()
	if root == "" {
		return nil, errors.New("store: base path unknown")
	}
	logger.Debug("opening store", "path", root)
	return &persistence{
		basePath: root,
		disk: diskv.New(diskv.Options{
			BasePath:          root,
			AdvancedTransform: func(k string) *diskv.PathKey { return parseRecordKey(k).pathKey() },
			InverseTransform:  func(pk *diskv.PathKey) string { return recordKeyFromPath(pk).String() },
			CacheSizeMax:      1 << 20,
		}),
	}, nil
}

type persistence struct {
	disk     *diskv.Diskv
	basePath string
}

// recordKey addresses one record: `<bucket>-<yyyy-mm-dd>-<id>`. diskv lays
// it out as bucket/yyyy/mm/dd/id.
type recordKey struct {
	bucket string
	day    string
	id     string
}

const (
	layoutISO = "2006-01-02"
	undated   = "undated"
)

func keyFor(e *entry.Entry) recordKey {
	day := undated
	if !e.Created.IsZero() {
		// UTC keeps the path stable across time zones.
		day = e.Created.UTC().Format(layoutISO)
	}
	return recordKey{bucket: toBucket(e.Kind), day: day, id: e.ID}
}

func (k recordKey) String() string {
	return k.bucket + "-" + k.day + "-" + k.id
}

func (k recordKey) pathKey() *diskv.PathKey {
	return &diskv.PathKey{
		Path:     append([]string{k.bucket}, strings.Split(k.day, "-")...),
		FileName: k.id,
	}
}

func (k recordKey) kind() catalog.Category {
	return fromBucket(k.bucket)
}

// parseRecordKey splits on the first and last separator; bucket and id never
// contain one, the day may.
func parseRecordKey(s string) recordKey {
	first := strings.Index(s, "-")
	last := strings.LastIndex(s, "-")
	if first < 0 {
		return recordKey{id: s}
	}
	if first == last {
		return recordKey{bucket: s[:first], id: s[last+1:]}
	}
	return recordKey{bucket: s[:first], day: s[first+1 : last], id: s[last+1:]}
}

func recordKeyFromPath(pk *diskv.PathKey) recordKey {
	k := recordKey{id: pk.FileName}
	if len(pk.Path) > 0 {
		k.bucket = pk.Path[0]
		k.day = strings.Join(pk.Path[1:], "-")
	}
	return k
}

func (p *persistence) read(key recordKey) (*entry.Entry, error) {
	raw, err := p.disk.Read(key.String())
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	if e.Schema == "" {
		e.Schema = entry.CurrentSchema
	}
	// The key is authoritative for identity.
	e.ID = key.id
	if e.Kind == "" {
		e.Kind = key.kind()
	}
	return e, nil
}

// scan reads every record accepted by match and returns them in journal order.
func (p *persistence) scan(ctx context.Context, match func(recordKey) bool) []*entry.Entry {
	var out []*entry.Entry
	for raw := range p.disk.Keys(ctx.Done()) {
		key := parseRecordKey(raw)
		if key.bucket == "" || (match != nil && !match(key)) {
			continue
		}
		e, err := p.read(key)
		if err != nil {
			logger.Warn("skipping unreadable record", "key", raw, "err", err)
			continue
		}
		out = append(out, e)
	}
	if out == nil {
		out = []*entry.Entry{}
	}
	slices.SortStableFunc(out, compareJournal)
	return out
}

// compareJournal orders by created time, undated last, then by ID.
func compareJournal(a, b *entry.Entry) int {
	return cmp.Or(
		compareCreated(a.Created.Time, b.Created.Time),
		cmp.Compare(a.ID, b.ID),
	)
}

func compareCreated(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return a.Compare(b)
}

func (p *persistence) ListAll(ctx context.Context) []*entry.Entry {
	return p.scan(ctx, nil)
}

func (p *persistence) List(ctx context.Context, kind catalog.Category) []*entry.Entry {
	bucket := toBucket(kind)
	return p.scan(ctx, func(k recordKey) bool { return k.bucket == bucket })
}

func (p *persistence) Get(ctx context.Context, id string) (*entry.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for raw := range p.disk.Keys(ctx.Done()) {
		if key := parseRecordKey(raw); key.id == id {
			return p.read(key)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (p *persistence) Kinds(ctx context.Context) []catalog.Category {
	var kinds []catalog.Category
	for raw := range p.disk.Keys(ctx.Done()) {
		key := parseRecordKey(raw)
		if key.bucket == "" {
			continue
		}
		if k := key.kind(); !slices.Contains(kinds, k) {
			kinds = append(kinds, k)
		}
	}
	slices.Sort(kinds)
	return kinds
}

func (p *persistence) Store(e *entry.Entry) error {
	switch {
	case e == nil:
		return errors.New("store: nil entry")
	case e.Kind == "":
		return errors.New("store: entry kind required")
	}
	if e.Schema == "" {
		e.Schema = entry.CurrentSchema
	}
	if e.ID == "" {
		e.ID = newID()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", e.ID, err)
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	if err := p.disk.Write(keyFor(e).String(), data); err != nil {
		return fmt.Errorf("store: write %s: %w", e.ID, err)
	}
	logger.Debug("stored entry", "id", e.ID, "kind", e.Kind)
	return nil
}

func (p *persistence) Delete(e *entry.Entry) error {
	if e == nil || e.ID == "" {
		return ErrNotFound
	}
	key := keyFor(e).String()
	if !p.disk.Has(key) {
		return fmt.Errorf("%w: %s", ErrNotFound, e.ID)
	}
	return p.disk.Erase(key)
}

// newID is a random uuid as 32 hex characters, free of the key separator.
func newID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// toBucket hex-encodes the kind so any category string is a safe directory name.
func toBucket(kind catalog.Category) string {
	return hex.EncodeToString([]byte(kind))
}

func fromBucket(s string) catalog.Category {
	b, err := hex.DecodeString(s)
	if err != nil {
		return catalog.Category(s)
	}
	return catalog.Category(b)
}
