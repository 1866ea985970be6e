package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"fieldops/internal/models"
)

// Postgres owns the pgx pool and hands out per-entity repositories.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a pooled connection to Postgres.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *Postgres) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

// Store exposes the pool as per-entity repositories.
func (p *Postgres) Store() Store {
	return Store{
		Technicians: &pgTechnicians{pool: p.pool},
		Jobs:        &pgJobs{pool: p.pool},
		Assets:      &pgAssets{pool: p.pool},
		TimeEntries: &pgTimeEntries{pool: p.pool},
	}
}

// --- Technicians ---

type pgTechnicians struct {
	pool *pgxpool.Pool
}

const technicianColumns = `id, name, email, phone, skills, status, location_lat, location_lng, location_address`

func scanTechnician(row pgx.Row) (models.Technician, error) {
	var t models.Technician
	var lat, lng pgtype.Float8
	var addr pgtype.Text
	if err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Skills, &t.Status, &lat, &lng, &addr); err != nil {
		return models.Technician{}, err
	}
	if lat.Valid && lng.Valid {
		t.Location = &models.Location{Lat: lat.Float64, Lng: lng.Float64, Address: textOrEmpty(addr)}
	}
	return t, nil
}

func (r *pgTechnicians) query(ctx context.Context, q string, args ...any) ([]models.Technician, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query technicians: %w", err)
	}
	defer rows.Close()
	var out []models.Technician
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technician: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *pgTechnicians) List(ctx context.Context) ([]models.Technician, error) {
	return r.query(ctx, `SELECT `+technicianColumns+` FROM technicians ORDER BY id`)
}

func (r *pgTechnicians) ListByStatus(ctx context.Context, status models.TechnicianStatus) ([]models.Technician, error) {
	return r.query(ctx, `SELECT `+technicianColumns+` FROM technicians WHERE status = $1 ORDER BY id`, status)
}

func (r *pgTechnicians) Get(ctx context.Context, id string) (models.Technician, error) {
	t, err := scanTechnician(r.pool.QueryRow(ctx, `SELECT `+technicianColumns+` FROM technicians WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Technician{}, models.ErrTechnicianNotFound
	}
	if err != nil {
		return models.Technician{}, fmt.Errorf("get technician: %w", err)
	}
	return t, nil
}

func technicianLocationParams(t models.Technician) (lat, lng pgtype.Float8, addr pgtype.Text) {
	if t.Location != nil {
		lat = pgtype.Float8{Float64: t.Location.Lat, Valid: true}
		lng = pgtype.Float8{Float64: t.Location.Lng, Valid: true}
		addr = toNullText(t.Location.Address)
	}
	return lat, lng, addr
}

func (r *pgTechnicians) Create(ctx context.Context, t models.Technician) (models.Technician, error) {
	lat, lng, addr := technicianLocationParams(t)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO technicians (id, name, email, phone, skills, status, location_lat, location_lng, location_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, t.ID, t.Name, t.Email, t.Phone, t.Skills, t.Status, lat, lng, addr)
	if err != nil {
		return models.Technician{}, fmt.Errorf("insert technician: %w", err)
	}
	return t, nil
}

func (r *pgTechnicians) Update(ctx context.Context, t models.Technician) (models.Technician, error) {
	lat, lng, addr := technicianLocationParams(t)
	tag, err := r.pool.Exec(ctx, `
		UPDATE technicians
		SET name = $2, email = $3, phone = $4, skills = $5, status = $6,
		    location_lat = $7, location_lng = $8, location_address = $9
		WHERE id = $1
	`, t.ID, t.Name, t.Email, t.Phone, t.Skills, t.Status, lat, lng, addr)
	if err != nil {
		return models.Technician{}, fmt.Errorf("update technician: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Technician{}, models.ErrTechnicianNotFound
	}
	return t, nil
}

func (r *pgTechnicians) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM technicians WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete technician: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrTechnicianNotFound
	}
	return nil
}

func (r *pgTechnicians) SetStatus(ctx context.Context, id string, status models.TechnicianStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE technicians SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set technician status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrTechnicianNotFound
	}
	return nil
}

func (r *pgTechnicians) SetLocation(ctx context.Context, id string, loc models.Location) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE technicians SET location_lat = $2, location_lng = $3, location_address = $4 WHERE id = $1
	`, id, loc.Lat, loc.Lng, loc.Address)
	if err != nil {
		return fmt.Errorf("set technician location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrTechnicianNotFound
	}
	return nil
}

// --- Jobs ---

type pgJobs struct {
	pool *pgxpool.Pool
}

const jobColumns = `id, title, description, customer_name, customer_address, customer_phone,
	assigned_technician, scheduled_start, scheduled_end, actual_start, actual_end,
	status, priority, work_notes, photos, customer_signature`

func scanJob(row pgx.Row) (models.Job, error) {
	var j models.Job
	var actualStart, actualEnd pgtype.Timestamptz
	var notes, signature pgtype.Text
	err := row.Scan(&j.ID, &j.Title, &j.Description,
		&j.Customer.Name, &j.Customer.Address, &j.Customer.Phone,
		&j.AssignedTechnician, &j.ScheduledStart, &j.ScheduledEnd, &actualStart, &actualEnd,
		&j.Status, &j.Priority, &notes, &j.Photos, &signature)
	if err != nil {
		return models.Job{}, err
	}
	j.ActualStart = timePtr(actualStart)
	j.ActualEnd = timePtr(actualEnd)
	j.WorkNotes = textOrEmpty(notes)
	j.CustomerSignature = textOrEmpty(signature)
	if len(j.Photos) == 0 {
		j.Photos = nil
	}
	return j, nil
}

func (r *pgJobs) query(ctx context.Context, q string, args ...any) ([]models.Job, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()
	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, r.attachUsages(ctx, out)
}

// attachUsages loads asset usages for the given jobs in one query.
func (r *pgJobs) attachUsages(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	ids := make([]string, len(jobs))
	byID := make(map[string]int, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
		byID[j.ID] = i
	}
	rows, err := r.pool.Query(ctx, `
		SELECT job_id, asset_id, quantity_used FROM asset_usages
		WHERE job_id = ANY($1) ORDER BY job_id, asset_id
	`, ids)
	if err != nil {
		return fmt.Errorf("query asset usages: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var u models.AssetUsage
		if err := rows.Scan(&u.JobID, &u.AssetID, &u.QuantityUsed); err != nil {
			return fmt.Errorf("scan asset usage: %w", err)
		}
		i := byID[u.JobID]
		jobs[i].AssetUsages = append(jobs[i].AssetUsages, u)
	}
	return rows.Err()
}

func (r *pgJobs) List(ctx context.Context, f JobFilter) ([]models.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs`
	var conds []string
	var args []any
	if f.TechnicianID != "" {
		args = append(args, f.TechnicianID)
		conds = append(conds, fmt.Sprintf("assigned_technician = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY scheduled_start"
	return r.query(ctx, q, args...)
}

func (r *pgJobs) ListScheduled(ctx context.Context, technicianID string, from, to time.Time) ([]models.Job, error) {
	return r.query(ctx, `
		SELECT `+jobColumns+` FROM jobs
		WHERE assigned_technician = $1 AND scheduled_start >= $2 AND scheduled_start < $3
		ORDER BY scheduled_start
	`, technicianID, from, to)
}

func (r *pgJobs) Get(ctx context.Context, id string) (models.Job, error) {
	jobs, err := r.query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	if err != nil {
		return models.Job{}, err
	}
	if len(jobs) == 0 {
		return models.Job{}, models.ErrJobNotFound
	}
	return jobs[0], nil
}

func (r *pgJobs) Create(ctx context.Context, j models.Job) (models.Job, error) {
	photos := j.Photos
	if photos == nil {
		photos = []string{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO jobs (id, title, description, customer_name, customer_address, customer_phone,
			assigned_technician, scheduled_start, scheduled_end, actual_start, actual_end,
			status, priority, work_notes, photos, customer_signature)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, j.ID, j.Title, j.Description, j.Customer.Name, j.Customer.Address, j.Customer.Phone,
		j.AssignedTechnician, j.ScheduledStart, j.ScheduledEnd, toNullTime(j.ActualStart), toNullTime(j.ActualEnd),
		j.Status, j.Priority, toNullText(j.WorkNotes), photos, toNullText(j.CustomerSignature))
	if err != nil {
		return models.Job{}, fmt.Errorf("insert job: %w", err)
	}
	return j, nil
}

func (r *pgJobs) Update(ctx context.Context, j models.Job) (models.Job, error) {
	photos := j.Photos
	if photos == nil {
		photos = []string{}
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE jobs
		SET title = $2, description = $3, customer_name = $4, customer_address = $5, customer_phone = $6,
		    assigned_technician = $7, scheduled_start = $8, scheduled_end = $9,
		    status = $10, priority = $11, work_notes = $12, photos = $13, customer_signature = $14
		WHERE id = $1
	`, j.ID, j.Title, j.Description, j.Customer.Name, j.Customer.Address, j.Customer.Phone,
		j.AssignedTechnician, j.ScheduledStart, j.ScheduledEnd,
		j.Status, j.Priority, toNullText(j.WorkNotes), photos, toNullText(j.CustomerSignature))
	if err != nil {
		return models.Job{}, fmt.Errorf("update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Job{}, models.ErrJobNotFound
	}
	return r.Get(ctx, j.ID)
}

func (r *pgJobs) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrJobNotFound
	}
	return nil
}

// SetStatus stamps actual_start/actual_end with set-if-null semantics in a
// single UPDATE, so a concurrent duplicate transition cannot overwrite the
// first stamp.
func (r *pgJobs) SetStatus(ctx context.Context, id string, status models.JobStatus, now time.Time) (models.Job, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE jobs
		SET status = $2,
		    actual_start = CASE WHEN $2 = 'in_progress' THEN COALESCE(actual_start, $3) ELSE actual_start END,
		    actual_end   = CASE WHEN $2 = 'completed'   THEN COALESCE(actual_end, $3) ELSE actual_end END
		WHERE id = $1
	`, id, status, now)
	if err != nil {
		return models.Job{}, fmt.Errorf("set job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Job{}, models.ErrJobNotFound
	}
	return r.Get(ctx, id)
}

func (r *pgJobs) SetWorkNotes(ctx context.Context, id, notes string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE jobs SET work_notes = $2 WHERE id = $1`, id, notes)
	if err != nil {
		return fmt.Errorf("set work notes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrJobNotFound
	}
	return nil
}

func (r *pgJobs) UpsertAssetUsage(ctx context.Context, jobID, assetID string, quantity int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO asset_usages (job_id, asset_id, quantity_used)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_id, asset_id)
		DO UPDATE SET quantity_used = asset_usages.quantity_used + EXCLUDED.quantity_used
	`, jobID, assetID, quantity)
	if err != nil {
		return fmt.Errorf("upsert asset usage: %w", err)
	}
	return nil
}

// --- Assets ---

type pgAssets struct {
	pool *pgxpool.Pool
}

const assetColumns = `id, name, type, description, quantity, location, assigned_to, condition, last_maintenance`

func scanAsset(row pgx.Row) (models.Asset, error) {
	var a models.Asset
	var assignedTo pgtype.Text
	var lastMaintenance pgtype.Timestamptz
	if err := row.Scan(&a.ID, &a.Name, &a.Type, &a.Description, &a.Quantity, &a.Location, &assignedTo, &a.Condition, &lastMaintenance); err != nil {
		return models.Asset{}, err
	}
	a.AssignedTo = textOrEmpty(assignedTo)
	a.LastMaintenance = timePtr(lastMaintenance)
	return a, nil
}

func (r *pgAssets) query(ctx context.Context, q string, args ...any) ([]models.Asset, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()
	var out []models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *pgAssets) List(ctx context.Context) ([]models.Asset, error) {
	return r.query(ctx, `SELECT `+assetColumns+` FROM assets ORDER BY id`)
}

func (r *pgAssets) ListAvailable(ctx context.Context, typ *models.AssetType) ([]models.Asset, error) {
	if typ == nil {
		return r.query(ctx, `SELECT `+assetColumns+` FROM assets WHERE quantity > 0 ORDER BY id`)
	}
	return r.query(ctx, `SELECT `+assetColumns+` FROM assets WHERE quantity > 0 AND type = $1 ORDER BY id`, *typ)
}

func (r *pgAssets) Get(ctx context.Context, id string) (models.Asset, error) {
	a, err := scanAsset(r.pool.QueryRow(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Asset{}, models.ErrAssetNotFound
	}
	if err != nil {
		return models.Asset{}, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

func (r *pgAssets) Create(ctx context.Context, a models.Asset) (models.Asset, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO assets (id, name, type, description, quantity, location, assigned_to, condition, last_maintenance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, a.ID, a.Name, a.Type, a.Description, a.Quantity, a.Location, toNullText(a.AssignedTo), a.Condition, toNullTime(a.LastMaintenance))
	if err != nil {
		return models.Asset{}, fmt.Errorf("insert asset: %w", err)
	}
	return a, nil
}

func (r *pgAssets) Update(ctx context.Context, a models.Asset) (models.Asset, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE assets
		SET name = $2, type = $3, description = $4, quantity = $5, location = $6,
		    assigned_to = $7, condition = $8, last_maintenance = $9
		WHERE id = $1
	`, a.ID, a.Name, a.Type, a.Description, a.Quantity, a.Location, toNullText(a.AssignedTo), a.Condition, toNullTime(a.LastMaintenance))
	if err != nil {
		return models.Asset{}, fmt.Errorf("update asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Asset{}, models.ErrAssetNotFound
	}
	return a, nil
}

func (r *pgAssets) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrAssetNotFound
	}
	return nil
}

func (r *pgAssets) SetAssignedTo(ctx context.Context, id string, technicianID *string) error {
	var assigned pgtype.Text
	if technicianID != nil {
		assigned = pgtype.Text{String: *technicianID, Valid: true}
	}
	tag, err := r.pool.Exec(ctx, `UPDATE assets SET assigned_to = $2 WHERE id = $1`, id, assigned)
	if err != nil {
		return fmt.Errorf("assign asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrAssetNotFound
	}
	return nil
}

func (r *pgAssets) SetQuantity(ctx context.Context, id string, quantity int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE assets SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("set asset quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrAssetNotFound
	}
	return nil
}

// --- Time entries ---

type pgTimeEntries struct {
	pool *pgxpool.Pool
}

const timeEntryColumns = `id, technician_id, job_id, start_time, end_time, break_minutes, notes`

func scanTimeEntry(row pgx.Row) (models.TimeEntry, error) {
	var e models.TimeEntry
	var endTime pgtype.Timestamptz
	var breakMinutes pgtype.Int4
	var notes pgtype.Text
	if err := row.Scan(&e.ID, &e.TechnicianID, &e.JobID, &e.StartTime, &endTime, &breakMinutes, &notes); err != nil {
		return models.TimeEntry{}, err
	}
	e.EndTime = timePtr(endTime)
	e.BreakMinutes = intPtr(breakMinutes)
	e.Notes = textOrEmpty(notes)
	return e, nil
}

func (r *pgTimeEntries) query(ctx context.Context, q string, args ...any) ([]models.TimeEntry, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query time entries: %w", err)
	}
	defer rows.Close()
	var out []models.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *pgTimeEntries) Create(ctx context.Context, e models.TimeEntry) (models.TimeEntry, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO time_entries (id, technician_id, job_id, start_time, end_time, break_minutes, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.TechnicianID, e.JobID, e.StartTime, toNullTime(e.EndTime), toNullInt(e.BreakMinutes), toNullText(e.Notes))
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("insert time entry: %w", err)
	}
	return e, nil
}

func (r *pgTimeEntries) Get(ctx context.Context, id string) (models.TimeEntry, error) {
	e, err := scanTimeEntry(r.pool.QueryRow(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TimeEntry{}, models.ErrTimeEntryNotFound
	}
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("get time entry: %w", err)
	}
	return e, nil
}

// End closes an entry exactly once: the guard is the end_time IS NULL
// predicate, so a second close affects zero rows and reports ErrTimeEntryClosed.
// Nil breakMinutes/notes leave stored values untouched via COALESCE.
func (r *pgTimeEntries) End(ctx context.Context, id string, endTime time.Time, breakMinutes *int, notes *string) (models.TimeEntry, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE time_entries
		SET end_time = $2,
		    break_minutes = COALESCE($3, break_minutes),
		    notes = COALESCE($4, notes)
		WHERE id = $1 AND end_time IS NULL
	`, id, endTime, breakMinutes, notes)
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("end time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return models.TimeEntry{}, getErr
		}
		return models.TimeEntry{}, models.ErrTimeEntryClosed
	}
	return r.Get(ctx, id)
}

func (r *pgTimeEntries) ListByTechnician(ctx context.Context, technicianID string, from, to *time.Time) ([]models.TimeEntry, error) {
	return r.query(ctx, `
		SELECT `+timeEntryColumns+` FROM time_entries
		WHERE technician_id = $1
		  AND ($2::timestamptz IS NULL OR start_time >= $2)
		  AND ($3::timestamptz IS NULL OR start_time < $3)
		ORDER BY start_time DESC
	`, technicianID, toNullTime(from), toNullTime(to))
}

func (r *pgTimeEntries) ListByJob(ctx context.Context, jobID string) ([]models.TimeEntry, error) {
	return r.query(ctx, `
		SELECT `+timeEntryColumns+` FROM time_entries
		WHERE job_id = $1 ORDER BY start_time
	`, jobID)
}

func (r *pgTimeEntries) ListClosedInRange(ctx context.Context, technicianID string, from, to time.Time) ([]models.TimeEntry, error) {
	return r.query(ctx, `
		SELECT `+timeEntryColumns+` FROM time_entries
		WHERE technician_id = $1 AND start_time >= $2 AND start_time < $3 AND end_time IS NOT NULL
		ORDER BY start_time
	`, technicianID, from, to)
}
