package store

import "github.com/fccrm/crm-admin/internal/logger"

// Repositories bundles all persistence-layer implementations for
// injection into the service layer.
type Repositories struct {
	CompanyRepository CompanyRepository
	LogRepository     LogRepository
}

// NewRepositories wires every repository to the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		CompanyRepository: NewCompanyRepository(db, logger),
		LogRepository:     NewLogRepository(db, logger),
	}
}
