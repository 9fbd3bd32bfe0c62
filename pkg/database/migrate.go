package database

import (
	"context"
	"fmt"
)

// migrationStatements are idempotent and run in order on every start.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password TEXT NOT NULL,
		phone VARCHAR(15),
		address TEXT,
		role VARCHAR(20) NOT NULL DEFAULT 'customer',
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		terms_accepted BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token UUID NOT NULL UNIQUE,
		user_agent TEXT,
		ip_address TEXT,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		full_name VARCHAR(255) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		latitude NUMERIC(9,6),
		longitude NUMERIC(9,6),
		city VARCHAR(100),
		pincode VARCHAR(6),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		icon TEXT,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id UUID PRIMARY KEY,
		category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		base_price NUMERIC(10,2) NOT NULL,
		duration INTEGER NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS professionals (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		category_id UUID REFERENCES categories(id) ON DELETE SET NULL,
		bio TEXT NOT NULL DEFAULT '',
		experience_years INTEGER NOT NULL DEFAULT 0,
		availability_status BOOLEAN NOT NULL DEFAULT TRUE,
		safety_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_jobs INTEGER NOT NULL DEFAULT 0,
		rehire_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		profile_picture TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS professional_documents (
		id UUID PRIMARY KEY,
		professional_id UUID NOT NULL REFERENCES professionals(id) ON DELETE CASCADE,
		document_type VARCHAR(20) NOT NULL,
		file_path TEXT NOT NULL,
		verification_status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		professional_id UUID NOT NULL REFERENCES professionals(id) ON DELETE CASCADE,
		service_id UUID REFERENCES services(id) ON DELETE CASCADE,
		booking_date TIMESTAMPTZ NOT NULL,
		time_slot VARCHAR(100) NOT NULL DEFAULT 'Morning',
		service_address TEXT,
		requirements TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_customer ON bookings (customer_id, booking_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_professional ON bookings (professional_id, booking_date DESC)`,
	`CREATE TABLE IF NOT EXISTS job_trackings (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL UNIQUE REFERENCES bookings(id) ON DELETE CASCADE,
		latitude NUMERIC(9,6) NOT NULL,
		longitude NUMERIC(9,6) NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL UNIQUE REFERENCES bookings(id) ON DELETE CASCADE,
		amount NUMERIC(10,2) NOT NULL,
		payment_method VARCHAR(20) NOT NULL DEFAULT '',
		payment_status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
		payment_details TEXT,
		paid_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL UNIQUE REFERENCES bookings(id) ON DELETE CASCADE,
		invoice_number VARCHAR(100) NOT NULL UNIQUE,
		total_amount NUMERIC(10,2) NOT NULL,
		generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL UNIQUE REFERENCES bookings(id) ON DELETE CASCADE,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS complaints (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'OPEN',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, created_at DESC)`,
}

// Migrate applies the schema. Every statement is safe to re-run.
func Migrate(ctx context.Context, db PgxIface) error {
	for i, stmt := range migrationStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
