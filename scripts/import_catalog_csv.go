package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"BabyNest/config"
	"BabyNest/logger"
	"BabyNest/models"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var CLI struct {
	LogLevel string `help:"Log level." default:"info" enum:"debug,info,warn,error"`

	Milestones   MilestonesCmd   `cmd:"" help:"Import milestones from month,title,sub_title,sub_description rows."`
	Vaccinations VaccinationsCmd `cmd:"" help:"Import vaccinations from name,description,month_order rows."`
	Tips         TipsCmd         `cmd:"" help:"Import daily tips from day,text rows."`
}

type MilestonesCmd struct {
	File string `arg:"" type:"existingfile" help:"CSV file with a header row."`
}

type VaccinationsCmd struct {
	File string `arg:"" type:"existingfile" help:"CSV file with a header row."`
}

type TipsCmd struct {
	File    string `arg:"" type:"existingfile" help:"CSV file with a header row."`
	Replace bool   `help:"Delete existing tips before importing."`
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("import-catalog"),
		kong.Description("Seed milestone, vaccination and tip reference data."),
		kong.UsageOnError(),
	)

	log, err := logger.NewLogger(CLI.LogLevel, "console", "babynest-import")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	loc, err := time.LoadLocation(getenv("APP_TIMEZONE", "UTC"))
	if err != nil {
		log.Fatal("invalid APP_TIMEZONE", zap.Error(err))
	}
	db, err := config.InitDatabase(config.DatabaseFromEnv(loc), log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}

	ctx.FatalIfErrorf(ctx.Run(db, log))
}

func (c *MilestonesCmd) Run(db *gorm.DB, log *zap.Logger) error {
	rows, err := readRows(c.File, 4)
	if err != nil {
		return err
	}

	var milestones []*models.Milestone
	byKey := map[string]*models.Milestone{}
	for i, row := range rows {
		month, err := strconv.Atoi(row[0])
		if err != nil || month < 0 {
			return fmt.Errorf("row %d: invalid month %q", i+2, row[0])
		}
		key := fmt.Sprintf("%d|%s", month, row[1])
		m, ok := byKey[key]
		if !ok {
			m = &models.Milestone{Month: month, Title: row[1]}
			byKey[key] = m
			milestones = append(milestones, m)
		}
		m.SubMilestones = append(m.SubMilestones, models.SubMilestone{Title: row[2], Description: row[3]})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, m := range milestones {
			if err := tx.Create(m).Error; err != nil {
				return fmt.Errorf("milestone %q: %w", m.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("milestones imported", zap.Int("milestones", len(milestones)), zap.Int("rows", len(rows)))
	return nil
}

func (c *VaccinationsCmd) Run(db *gorm.DB, log *zap.Logger) error {
	rows, err := readRows(c.File, 3)
	if err != nil {
		return err
	}

	vaccinations := make([]models.Vaccination, 0, len(rows))
	for i, row := range rows {
		month := models.VaccinationMonth(strings.ToUpper(row[2]))
		if !month.Valid() {
			return fmt.Errorf("row %d: invalid month order %q", i+2, row[2])
		}
		vaccinations = append(vaccinations, models.Vaccination{Name: row[0], Description: row[1], MonthOrder: month})
	}
	if len(vaccinations) == 0 {
		log.Warn("no vaccinations in file", zap.String("file", c.File))
		return nil
	}

	if err := db.Create(&vaccinations).Error; err != nil {
		return fmt.Errorf("insert vaccinations: %w", err)
	}
	log.Info("vaccinations imported", zap.Int("count", len(vaccinations)))
	return nil
}

func (c *TipsCmd) Run(db *gorm.DB, log *zap.Logger) error {
	rows, err := readRows(c.File, 2)
	if err != nil {
		return err
	}

	tips := make([]models.Tip, 0, len(rows))
	for i, row := range rows {
		day, err := strconv.Atoi(row[0])
		if err != nil || day < 1 {
			return fmt.Errorf("row %d: invalid day %q", i+2, row[0])
		}
		tips = append(tips, models.Tip{Day: day, Text: row[1]})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if c.Replace {
			if err := tx.Where("1 = 1").Delete(&models.Tip{}).Error; err != nil {
				return err
			}
		}
		if len(tips) > 0 {
			if err := tx.Create(&tips).Error; err != nil {
				return fmt.Errorf("insert tips: %w", err)
			}
		}
		log.Info("tips imported", zap.Int("count", len(tips)), zap.Bool("replaced", c.Replace))
		return nil
	})
}

// readRows returns every record after the header, trimmed, with at least
// minFields columns.
func readRows(path string, minFields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) < minFields {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", line, minFields, len(record))
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
