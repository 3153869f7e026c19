package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/clinicadmn/clinica-backend/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB es la instancia global del pool de conexiones
var DB *pgxpool.Pool

// connString construye la cadena de conexión a PostgreSQL.
// Se usa DATABASE_URL si está definida; si no, se arma a partir de las
// variables DB_HOST, DB_PORT, DB_NAME, DB_USER y DB_PASSWORD.
func connString() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "clinica"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}
	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "postgres"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)
}

// ConnectDB establece la conexión con la base de datos usando un pool
func ConnectDB() {
	log := config.GetLogrusInstance()

	cfg, err := pgxpool.ParseConfig(connString())
	if err != nil {
		log.Fatalf("Error al parsear la URL de la base de datos: %v", err)
	}
	cfg.MaxConns = 30
	cfg.MinConns = 5
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = time.Minute * 30
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	DB, err = pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Error al crear el pool de conexiones: %v", err)
	}

	// Probar si la base de datos está viva haciendo una consulta rápida
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var version string
	if err := DB.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		log.Fatalf("Error al probar la conexión: %v", err)
	}

	log.WithField("version", version).Info("Conectado exitosamente a la base de datos")
}

// CloseDB cierra el pool de conexiones
func CloseDB() {
	if DB != nil {
		DB.Close()
		config.GetLogrusInstance().Info("Pool de conexiones cerrado")
	}
}

// GetDB retorna la instancia del pool de conexiones
func GetDB() *pgxpool.Pool {
	return DB
}

// InitSchema crea las tablas medicos, pacientes y citas si no existen
func InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS medicos (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			especialidad VARCHAR(255),
			fecha_registro TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS pacientes (
			id SERIAL PRIMARY KEY,
			medico_id INT REFERENCES medicos(id) ON DELETE CASCADE,
			nombre VARCHAR(255) NOT NULL,
			edad INTEGER,
			email VARCHAR(255),
			telefono VARCHAR(50),
			historial TEXT,
			fecha_registro TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS citas (
			id SERIAL PRIMARY KEY,
			paciente_id INT REFERENCES pacientes(id) ON DELETE CASCADE,
			medico_id INT REFERENCES medicos(id) ON DELETE CASCADE,
			fecha DATE NOT NULL,
			hora TIME NOT NULL,
			motivo TEXT,
			cancelada BOOLEAN DEFAULT FALSE
		)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("error inicializando el esquema: %w", err)
		}
	}
	return nil
}
