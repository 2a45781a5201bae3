package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/docparse"
)

// Compile-time interface verification.
var _ docparse.ConversionService = (*ConversionService)(nil)

// ConversionService implements docparse.ConversionService using SQLite.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateConversion persists a new conversion. Missing identity fields
// are assigned: ID, CreatedAt, and a content hash over the result.
func (s *ConversionService) CreateConversion(ctx context.Context, conv *docparse.Conversion) error {
	if err := conv.Validate(); err != nil {
		return err
	}

	result, err := json.Marshal(conv.Result)
	if err != nil {
		return err
	}

	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now().UTC()
	}
	if conv.ContentHash == "" {
		conv.ContentHash = hashContent(string(result))
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, source_path, source_type, title, result, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, conv.ID, conv.SourcePath, conv.SourceType, conv.Title, string(result), conv.ContentHash,
		conv.CreatedAt.Format(time.RFC3339))

	return err
}

// FindConversionByID retrieves a conversion by ID.
func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*docparse.Conversion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, source_type, title, result, content_hash, created_at
		FROM conversions
		WHERE id = ?
	`, id)

	conv, err := scanConversion(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docparse.Errorf(docparse.ENOTFOUND, "conversion not found")
	}
	if err != nil {
		return nil, err
	}

	return conv, nil
}

// FindConversions retrieves conversions matching the filter, newest
// first.
func (s *ConversionService) FindConversions(ctx context.Context, filter docparse.ConversionFilter) ([]*docparse.Conversion, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_path, source_type, title, result, content_hash, created_at FROM conversions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []*docparse.Conversion
	for rows.Next() {
		conv, err := scanConversion(rows.Scan)
		if err != nil {
			return nil, err
		}
		convs = append(convs, conv)
	}

	return convs, rows.Err()
}

// DeleteConversion permanently removes a conversion.
func (s *ConversionService) DeleteConversion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM conversions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docparse.Errorf(docparse.ENOTFOUND, "conversion not found")
	}

	return nil
}

// scanConversion reads one conversion row via the given scan function.
func scanConversion(scan func(dest ...any) error) (*docparse.Conversion, error) {
	var conv docparse.Conversion
	var result, createdAt string

	if err := scan(&conv.ID, &conv.SourcePath, &conv.SourceType, &conv.Title,
		&result, &conv.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(result), &conv.Result); err != nil {
		return nil, err
	}

	var err error
	conv.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &conv, nil
}
