package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"database"`
}

type Car struct {
	Brand       string  `yaml:"brand"`
	Model       string  `yaml:"model"`
	Year        string  `yaml:"year"`
	IsActive    bool    `yaml:"is_active"`
	PricePerDay float64 `yaml:"price_per_day"`
	Location    string  `yaml:"location"`
	FuelType    string  `yaml:"fuel_type"`
	Description string  `yaml:"description"`
}

// Rental references a car by its position in the cars list.
type Rental struct {
	Car         int     `yaml:"car"`
	StartDate   string  `yaml:"start_date"`
	EndDate     string  `yaml:"end_date"`
	PricePerDay float64 `yaml:"price_per_day"`
	Status      string  `yaml:"status"`
}

type User struct {
	Email    string   `yaml:"email"`
	Password string   `yaml:"password"`
	Roles    []string `yaml:"roles"`
}

type SetupData struct {
	ConfigFile string   `yaml:"config_file"`
	Cars       []Car    `yaml:"cars"`
	Rentals    []Rental `yaml:"rentals"`
	Users      []User   `yaml:"users"`
}

const schema = `
CREATE TABLE IF NOT EXISTS cars (
	id            SERIAL PRIMARY KEY,
	brand         TEXT NOT NULL,
	model         TEXT NOT NULL,
	year          TEXT NOT NULL,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	price_per_day NUMERIC(10,2) NOT NULL,
	location      TEXT NOT NULL,
	fuel_type     TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	image_url     TEXT NOT NULL DEFAULT '',
	created_on    TIMESTAMPTZ NOT NULL,
	updated_on    TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS rentals (
	id            SERIAL PRIMARY KEY,
	car_id        INTEGER NOT NULL,
	start_date    DATE NOT NULL,
	end_date      DATE NOT NULL,
	price_per_day NUMERIC(10,2) NOT NULL,
	status        TEXT NOT NULL DEFAULT 'Pending',
	created_on    TIMESTAMPTZ NOT NULL,
	updated_on    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS rentals_car_id_idx ON rentals (car_id);
CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	roles         TEXT[] NOT NULL DEFAULT '{}',
	created_on    TIMESTAMPTZ NOT NULL
);
`

func main() {
	setupFile := flag.String("data", "tests/data-setup/fleet.yaml", "Path to the seed data file")
	schemaOnly := flag.Bool("schema-only", false, "Create tables and exit")
	flag.Parse()

	// Check if file exists, if not try relative path
	if _, err := os.Stat(*setupFile); os.IsNotExist(err) {
		*setupFile = "fleet.yaml"
	}

	setupData, err := readSetupFile(*setupFile)
	if err != nil {
		log.Fatalf("Failed to read setup file: %v", err)
	}

	configPath := resolveConfigPath(setupData.ConfigFile)
	config, err := readConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	db, err := connectDB(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("✓ Schema ready")
	if *schemaOnly {
		return
	}

	if err := populateData(db, setupData); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}

	log.Println("✅ Seed data successfully populated!")
}

func readSetupFile(filename string) (*SetupData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var setupData SetupData
	if err := yaml.Unmarshal(data, &setupData); err != nil {
		return nil, err
	}

	return &setupData, nil
}

func resolveConfigPath(configPath string) string {
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	// Try from project root
	fullPath := filepath.Join(findProjectRoot(), configPath)
	if _, err := os.Stat(fullPath); err == nil {
		return fullPath
	}

	return configPath
}

func findProjectRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "."
}

func readConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if config.Database.SSLMode == "" {
		config.Database.SSLMode = "disable"
	}

	return &config, nil
}

func connectDB(config *Config) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Database.Host,
		config.Database.Port,
		config.Database.User,
		config.Database.Password,
		config.Database.Database,
		config.Database.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Connected to database: %s@%s:%d/%s",
		config.Database.User,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database)

	return db, nil
}

func populateData(db *sql.DB, data *SetupData) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	// 1. Cars
	carIDs := make([]int32, len(data.Cars))
	for i, car := range data.Cars {
		err = tx.QueryRow(`
			INSERT INTO cars (brand, model, year, is_active, price_per_day, location, fuel_type, description, image_url, created_on, updated_on)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '', $9, $9)
			RETURNING id
		`,
			car.Brand, car.Model, car.Year, car.IsActive, car.PricePerDay,
			car.Location, car.FuelType, car.Description, now,
		).Scan(&carIDs[i])
		if err != nil {
			return fmt.Errorf("failed to create car %s %s: %w", car.Brand, car.Model, err)
		}
		log.Printf("  ✓ Car %d/%d: %s %s (%s) id=%d", i+1, len(data.Cars), car.Brand, car.Model, car.Year, carIDs[i])
	}

	// 2. Rentals
	for i, rental := range data.Rentals {
		if rental.Car < 0 || rental.Car >= len(carIDs) {
			return fmt.Errorf("rental %d references car index %d out of range", i+1, rental.Car)
		}
		status := rental.Status
		if status == "" {
			status = "Pending"
		}
		var id int32
		err = tx.QueryRow(`
			INSERT INTO rentals (car_id, start_date, end_date, price_per_day, status, created_on, updated_on)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING id
		`,
			carIDs[rental.Car], rental.StartDate, rental.EndDate, rental.PricePerDay, status, now,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to create rental %d: %w", i+1, err)
		}
		log.Printf("  ✓ Rental #%d: car=%d %s..%s %s", id, carIDs[rental.Car], rental.StartDate, rental.EndDate, status)
	}

	// 3. Users
	for i, user := range data.Users {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", user.Email, err)
		}

		_, err = tx.Exec(`
			INSERT INTO users (email, password_hash, roles, created_on)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO NOTHING
		`,
			user.Email, string(passwordHash), pq.Array(user.Roles), now,
		)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Email, err)
		}
		log.Printf("  ✓ User %d/%d: %s %v", i+1, len(data.Users), user.Email, user.Roles)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
