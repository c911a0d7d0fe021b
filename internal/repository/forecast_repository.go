package repository

import (
	"database/sql"

	"freecast/internal/model"
)

type ForecastRepository struct {
	db *sql.DB
}

func NewForecastRepository(db *sql.DB) *ForecastRepository {
	return &ForecastRepository{db: db}
}

func (r *ForecastRepository) SaveForecast(rec *model.ForecastRecord) error {
	return r.db.QueryRow(`
		INSERT INTO forecast(question_id, question_text, probability, reasoning, model_used, published)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, rec.QuestionID, rec.QuestionText, rec.Probability, rec.Reasoning, rec.ModelUsed, rec.Published).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *ForecastRepository) GetForecasts(limit, offset int) ([]model.ForecastRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, question_id, question_text, probability, reasoning, model_used, published, created_at
		FROM forecast
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.ForecastRecord
	for rows.Next() {
		var rec model.ForecastRecord
		err := rows.Scan(&rec.ID, &rec.QuestionID, &rec.QuestionText, &rec.Probability, &rec.Reasoning, &rec.ModelUsed, &rec.Published, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *ForecastRepository) GetForecastByID(id int64) (*model.ForecastRecord, error) {
	var rec model.ForecastRecord
	err := r.db.QueryRow(`
		SELECT id, question_id, question_text, probability, reasoning, model_used, published, created_at
		FROM forecast
		WHERE id = $1
	`, id).Scan(&rec.ID, &rec.QuestionID, &rec.QuestionText, &rec.Probability, &rec.Reasoning, &rec.ModelUsed, &rec.Published, &rec.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *ForecastRepository) GetForecastTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM forecast`).Scan(&total)
	return total, err
}
