package contacts

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/setterlabs/crm-backend/internal/models"
)

// Service reads CRM contacts. Contacts are written by the channel
// integrations, never by this service.
type Service struct {
	db *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// Filter narrows the contact listing. Zero values mean "no filter".
type Filter struct {
	Platform    string
	Status      string
	LeadQuality string
	Search      string
}

func (s *Service) List(ctx context.Context, f Filter) ([]models.Contact, error) {
	query := `SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), platform,
	                 status, COALESCE(lead_quality, ''), COALESCE(lifetime_value, 0),
	                 last_interaction_at, created_at
	          FROM contacts WHERE 1=1`
	var args []interface{}

	if f.Platform != "" {
		args = append(args, f.Platform)
		query += fmt.Sprintf(" AND platform = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.LeadQuality != "" {
		args = append(args, f.LeadQuality)
		query += fmt.Sprintf(" AND lead_quality = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", n, n, n)
	}

	query += " ORDER BY last_interaction_at DESC NULLS LAST"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Platform,
			&c.Status, &c.LeadQuality, &c.LifetimeValue, &c.LastInteractionAt, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

// Stats aggregates the CRM funnel in a single scan.
func (s *Service) Stats(ctx context.Context) (*models.CRMStats, error) {
	var stats models.CRMStats
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'new'),
		        COUNT(*) FILTER (WHERE status = 'qualified'),
		        COUNT(*) FILTER (WHERE status = 'converted'),
		        COUNT(*) FILTER (WHERE lead_quality = 'hot'),
		        COALESCE(SUM(lifetime_value), 0)
		 FROM contacts`,
	).Scan(&stats.Total, &stats.New, &stats.Qualified, &stats.Converted, &stats.HotLeads, &stats.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("contact stats: %w", err)
	}
	return &stats, nil
}
