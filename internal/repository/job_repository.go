package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobFilter struct {
	Source string
	Remote *bool
	Search string
	Limit  int
	Offset int
}

type SourceStat struct {
	Source    string    `json:"source"`
	TotalJobs int       `json:"total_jobs"`
	LastJobAt time.Time `json:"last_job_at"`
}

// SkillDemand counts how many stored jobs ask for a skill.
type SkillDemand struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type JobRepository interface {
	UpsertBatch(ctx context.Context, jobs []job.StructuredJob) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.StructuredJob, error)
	List(ctx context.Context, filter JobFilter) ([]job.StructuredJob, error)
	ListAll(ctx context.Context) ([]job.StructuredJob, error)
	Count(ctx context.Context) (int, error)
	SourceStats(ctx context.Context) ([]SourceStat, error)
	SkillDemand(ctx context.Context, limit int) ([]SkillDemand, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, source, external_id, title, company, COALESCE(description, ''),
	skills, experience_min, experience_max, seniority, location, remote,
	salary_min, salary_max, posted_date, url, created_at`

func scanJob(row database.Row) (job.StructuredJob, error) {
	var j job.StructuredJob
	var seniority *string
	err := row.Scan(
		&j.ID, &j.Source, &j.ExternalID, &j.Title, &j.Company, &j.Description,
		&j.Requirements.Skills, &j.Requirements.ExperienceMin, &j.Requirements.ExperienceMax,
		&seniority, &j.Requirements.Location, &j.Requirements.Remote,
		&j.Requirements.SalaryMin, &j.Requirements.SalaryMax,
		&j.PostedAt, &j.URL, &j.CreatedAt,
	)
	if err != nil {
		return job.StructuredJob{}, err
	}
	if seniority != nil {
		if lvl, ok := job.ParseSeniority(*seniority); ok {
			j.Requirements.Seniority = &lvl
		}
	}
	if j.Requirements.Skills == nil {
		j.Requirements.Skills = make([]string, 0)
	}
	return j, nil
}

func (r *PostgresJobRepository) UpsertBatch(ctx context.Context, jobs []job.StructuredJob) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	written := 0
	for _, j := range jobs {
		if j.ID == uuid.Nil {
			j.ID = uuid.New()
		}
		var seniority *string
		if j.Requirements.Seniority != nil {
			s := string(*j.Requirements.Seniority)
			seniority = &s
		}
		affected, err := tx.Exec(ctx,
			`INSERT INTO jobs
				(id, source, external_id, title, company, description, skills,
				 experience_min, experience_max, seniority, location, remote,
				 salary_min, salary_max, posted_date, url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			 ON CONFLICT (source, external_id) DO UPDATE SET
				title = EXCLUDED.title,
				company = EXCLUDED.company,
				description = EXCLUDED.description,
				skills = EXCLUDED.skills,
				experience_min = EXCLUDED.experience_min,
				experience_max = EXCLUDED.experience_max,
				seniority = EXCLUDED.seniority,
				location = EXCLUDED.location,
				remote = EXCLUDED.remote,
				salary_min = EXCLUDED.salary_min,
				salary_max = EXCLUDED.salary_max,
				posted_date = EXCLUDED.posted_date,
				url = EXCLUDED.url`,
			j.ID, j.Source, j.ExternalID, j.Title, j.Company, j.Description,
			j.Requirements.Skills, j.Requirements.ExperienceMin, j.Requirements.ExperienceMax,
			seniority, j.Requirements.Location, j.Requirements.Remote,
			j.Requirements.SalaryMin, j.Requirements.SalaryMax, j.PostedAt, j.URL,
		)
		if err != nil {
			return 0, err
		}
		written += int(affected)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return written, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.StructuredJob, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.StructuredJob{}, ErrJobNotFound
		}
		return job.StructuredJob{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, filter JobFilter) ([]job.StructuredJob, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`)
	args := make([]any, 0, 5)

	if src := strings.TrimSpace(filter.Source); src != "" {
		args = append(args, src)
		sb.WriteString(` AND source = $` + strconv.Itoa(len(args)))
	}
	if filter.Remote != nil {
		args = append(args, *filter.Remote)
		sb.WriteString(` AND remote = $` + strconv.Itoa(len(args)))
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		args = append(args, "%"+q+"%")
		n := strconv.Itoa(len(args))
		sb.WriteString(` AND (title ILIKE $` + n + ` OR company ILIKE $` + n + `)`)
	}

	args = append(args, limit)
	sb.WriteString(` ORDER BY posted_date DESC NULLS LAST, created_at DESC LIMIT $` + strconv.Itoa(len(args)))
	args = append(args, offset)
	sb.WriteString(` OFFSET $` + strconv.Itoa(len(args)))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

// ListAll feeds the ranking engine. The cap guards against unbounded result
// sets, it is not pagination.
func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.StructuredJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT 5000`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	var c int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRepository) SourceStats(ctx context.Context) ([]SourceStat, error) {
	rows, err := r.db.Query(ctx,
		`SELECT source, COUNT(*) AS total_jobs, MAX(created_at) AS last_job_at
		 FROM jobs GROUP BY source ORDER BY total_jobs DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SourceStat, 0)
	for rows.Next() {
		var st SourceStat
		var last *time.Time
		if err := rows.Scan(&st.Source, &st.TotalJobs, &last); err != nil {
			return nil, err
		}
		if last != nil {
			st.LastJobAt = last.UTC()
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) SkillDemand(ctx context.Context, limit int) ([]SkillDemand, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(ctx,
		`SELECT LOWER(skill) AS skill, COUNT(*) AS demand
		 FROM jobs, unnest(skills) AS skill
		 GROUP BY LOWER(skill)
		 ORDER BY demand DESC, skill ASC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillDemand, 0, limit)
	for rows.Next() {
		var d SkillDemand
		if err := rows.Scan(&d.Skill, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func collectJobs(rows database.Rows) ([]job.StructuredJob, error) {
	out := make([]job.StructuredJob, 0)
	for rows.Next() {
		j, err := scanJob(rowsAsRow{rows})
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// rowsAsRow lets the single-row scan helper run against an open cursor.
type rowsAsRow struct {
	rows database.Rows
}

func (r rowsAsRow) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}
