package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/familyalbum/album-backend/internal/config"
	"github.com/familyalbum/album-backend/internal/migration"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "config file path (default configs/config.<APP_ENV>.yaml)")
	dryRun := flag.Bool("dry-run", false, "show which tables would be created without executing")
	verify := flag.Bool("verify", false, "print row counts for every album table")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	if files := config.LoadDotEnv(); len(files) == 0 {
		log.Println("No .env file found, using environment variables")
	}

	if *configPath == "" {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "local"
		}
		*configPath = fmt.Sprintf("configs/config.%s.yaml", env)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logLevel := gormlogger.Warn
	if *verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB: %v", err)
	}
	defer sqlDB.Close()

	switch {
	case *dryRun:
		runDryRun(db)
	case *verify:
		runVerify(db)
	default:
		if err := migration.Run(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migration complete.")
	}
}

func tableName(db *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}

// runDryRun lists the tables that do not exist yet
func runDryRun(db *gorm.DB) {
	missing := 0
	for _, m := range migration.Models() {
		if !db.Migrator().HasTable(m) {
			log.Printf("[dry-run] would create %s", tableName(db, m))
			missing++
		}
	}
	var categories int64
	if db.Migrator().HasTable("photo_categories") {
		db.Table("photo_categories").Count(&categories)
	}
	if categories == 0 {
		log.Printf("[dry-run] would seed %d photo categories", len(migration.DefaultCategories()))
	}
	if missing == 0 {
		log.Println("[dry-run] schema is up to date")
	}
}

// runVerify prints row counts per table
func runVerify(db *gorm.DB) {
	for _, m := range migration.Models() {
		name := tableName(db, m)
		if !db.Migrator().HasTable(m) {
			log.Printf("[verify] %-18s MISSING", name)
			continue
		}
		var count int64
		if err := db.Model(m).Count(&count).Error; err != nil {
			log.Printf("[verify] %-18s error: %v", name, err)
			continue
		}
		log.Printf("[verify] %-18s %d rows", name, count)
	}
}
