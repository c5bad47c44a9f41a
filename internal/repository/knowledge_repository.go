package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"elimuhub-agent/internal/knowledge"
	"elimuhub-agent/internal/models"
)

// KnowledgeRepository persists the structured knowledge base in SQLite. The
// ingestion tool writes it; the serving process only reads, and only when the
// aggregated JSON file is unavailable.
type KnowledgeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewKnowledgeRepository(db *sql.DB, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

// InitSchema creates the knowledge tables.
func (r *KnowledgeRepository) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS programs (
		id TEXT PRIMARY KEY,
		country TEXT,
		university TEXT,
		program TEXT,
		duration TEXT,
		tuition_fee TEXT,
		requirements TEXT,
		deadline TEXT,
		scholarship_available INTEGER
	);
	CREATE TABLE IF NOT EXISTS visas (
		country TEXT PRIMARY KEY,
		visa_type TEXT,
		requirements TEXT,
		processing_time TEXT,
		fee TEXT,
		interview_required TEXT
	);
	CREATE TABLE IF NOT EXISTS tuition_programs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		program TEXT,
		details TEXT
	);
	CREATE TABLE IF NOT EXISTS guides (
		guide_key TEXT PRIMARY KEY,
		details TEXT
	);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize knowledge schema: %w", err)
	}
	return nil
}

// ReplaceAll wipes and reseeds every knowledge table from the aggregate.
func (r *KnowledgeRepository) ReplaceAll(ctx context.Context, agg *knowledge.Aggregate) error {
	for _, table := range []string{"programs", "visas", "tuition_programs", "guides"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	for _, p := range agg.Programs {
		reqs, err := json.Marshal(p.Requirements)
		if err != nil {
			return err
		}
		scholarship := 0
		if p.ScholarshipAvailable {
			scholarship = 1
		}
		query := squirrel.Insert("programs").
			Columns("id", "country", "university", "program", "duration", "tuition_fee", "requirements", "deadline", "scholarship_available").
			Values(p.ID, p.Country, p.University, p.Program, p.Duration, p.TuitionFee, string(reqs), p.Deadline, scholarship)
		if err := r.exec(ctx, query); err != nil {
			return fmt.Errorf("failed to insert program %s: %w", p.ID, err)
		}
	}

	for country, v := range agg.Visas {
		reqs, err := json.Marshal(v.Requirements)
		if err != nil {
			return err
		}
		query := squirrel.Insert("visas").
			Columns("country", "visa_type", "requirements", "processing_time", "fee", "interview_required").
			Values(country, v.VisaType, string(reqs), v.ProcessingTime, v.Fee, string(v.InterviewRequired))
		if err := r.exec(ctx, query); err != nil {
			return fmt.Errorf("failed to insert visa info for %s: %w", country, err)
		}
	}

	for _, t := range agg.Tuition {
		details, err := json.Marshal(t)
		if err != nil {
			return err
		}
		query := squirrel.Insert("tuition_programs").
			Columns("program", "details").
			Values(t.Program, string(details))
		if err := r.exec(ctx, query); err != nil {
			return fmt.Errorf("failed to insert tuition program %s: %w", t.Program, err)
		}
	}

	for key, g := range agg.Guides {
		details, err := json.Marshal(g)
		if err != nil {
			return err
		}
		query := squirrel.Insert("guides").
			Columns("guide_key", "details").
			Values(key, string(details))
		if err := r.exec(ctx, query); err != nil {
			return fmt.Errorf("failed to insert guide %s: %w", key, err)
		}
	}

	r.logger.Info("Knowledge base seeded",
		zap.Int("programs", len(agg.Programs)),
		zap.Int("visas", len(agg.Visas)),
		zap.Int("tuition_programs", len(agg.Tuition)),
		zap.Int("guides", len(agg.Guides)),
	)
	return nil
}

// LoadAggregate reads the knowledge tables back into an aggregate. FAQs are
// not persisted in SQLite, so the loaded aggregate carries none.
func (r *KnowledgeRepository) LoadAggregate(ctx context.Context) (*knowledge.Aggregate, error) {
	agg := &knowledge.Aggregate{
		Visas:  map[string]models.VisaRecord{},
		Guides: map[string]models.GuideRecord{},
	}

	rows, err := r.query(ctx, squirrel.
		Select("id", "country", "university", "program", "duration", "tuition_fee", "requirements", "deadline", "scholarship_available").
		From("programs").
		OrderBy("id"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p models.ProgramRecord
		var reqs string
		var scholarship int
		if err := rows.Scan(&p.ID, &p.Country, &p.University, &p.Program, &p.Duration, &p.TuitionFee, &reqs, &p.Deadline, &scholarship); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(reqs), &p.Requirements); err != nil {
			return nil, fmt.Errorf("malformed requirements for program %s: %w", p.ID, err)
		}
		p.ScholarshipAvailable = scholarship != 0
		agg.Programs = append(agg.Programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	visaRows, err := r.query(ctx, squirrel.
		Select("country", "visa_type", "requirements", "processing_time", "fee", "interview_required").
		From("visas"))
	if err != nil {
		return nil, err
	}
	defer visaRows.Close()
	for visaRows.Next() {
		var country, reqs, interview string
		var v models.VisaRecord
		if err := visaRows.Scan(&country, &v.VisaType, &reqs, &v.ProcessingTime, &v.Fee, &interview); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(reqs), &v.Requirements); err != nil {
			return nil, fmt.Errorf("malformed requirements for visa %s: %w", country, err)
		}
		v.InterviewRequired = models.TriState(interview)
		agg.Visas[country] = v
	}
	if err := visaRows.Err(); err != nil {
		return nil, err
	}

	tuitionRows, err := r.query(ctx, squirrel.Select("details").From("tuition_programs").OrderBy("id"))
	if err != nil {
		return nil, err
	}
	defer tuitionRows.Close()
	for tuitionRows.Next() {
		var details string
		if err := tuitionRows.Scan(&details); err != nil {
			return nil, err
		}
		var t models.TuitionRecord
		if err := json.Unmarshal([]byte(details), &t); err != nil {
			return nil, fmt.Errorf("malformed tuition record: %w", err)
		}
		agg.Tuition = append(agg.Tuition, t)
	}
	if err := tuitionRows.Err(); err != nil {
		return nil, err
	}

	guideRows, err := r.query(ctx, squirrel.Select("guide_key", "details").From("guides"))
	if err != nil {
		return nil, err
	}
	defer guideRows.Close()
	for guideRows.Next() {
		var key, details string
		if err := guideRows.Scan(&key, &details); err != nil {
			return nil, err
		}
		var g models.GuideRecord
		if err := json.Unmarshal([]byte(details), &g); err != nil {
			return nil, fmt.Errorf("malformed guide %s: %w", key, err)
		}
		agg.Guides[key] = g
	}
	if err := guideRows.Err(); err != nil {
		return nil, err
	}

	return agg, nil
}

func (r *KnowledgeRepository) exec(ctx context.Context, query squirrel.InsertBuilder) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *KnowledgeRepository) query(ctx context.Context, query squirrel.SelectBuilder) (*sql.Rows, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	return r.db.QueryContext(ctx, sqlStr, args...)
}
