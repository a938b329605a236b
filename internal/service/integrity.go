package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/reference"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	Entries           int      `json:"entries"`
	InvalidTimestamps int      `json:"invalid_timestamps"`
	UnknownFoods      int      `json:"unknown_foods"`
	CategoryMismatch  int      `json:"category_mismatch"`
	UnparseableAge    bool     `json:"unparseable_age"`
	Notes             []string `json:"notes,omitempty"`
}

// Issues counts findings that make stored data unreadable. Unknown foods and
// category mismatches are reported but tolerated by the aggregation engine.
func (r DoctorReport) Issues() int {
	return r.InvalidTimestamps
}

// CreateBackup writes a compacted copy of the open database to outPath using
// VACUUM INTO, plus a .sha256 sidecar used by RestoreBackup.
func CreateBackup(db *sql.DB, outPath string) (BackupInfo, error) {
	outPath = strings.TrimSpace(outPath)
	if outPath == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if _, err := os.Stat(outPath); err == nil {
		return BackupInfo{}, fmt.Errorf("backup file %s already exists", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if _, err := db.Exec(`VACUUM INTO ?`, outPath); err != nil {
		return BackupInfo{}, fmt.Errorf("write backup: %w", err)
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func RunDoctor(db *sql.DB) (DoctorReport, error) {
	report := DoctorReport{}
	rows, err := db.Query(`SELECT id, name, category, logged_at FROM entries ORDER BY id ASC`)
	if err != nil {
		return report, fmt.Errorf("doctor entries query: %w", err)
	}
	for rows.Next() {
		var id int64
		var name, category, loggedAt string
		if err := rows.Scan(&id, &name, &category, &loggedAt); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor entries scan: %w", err)
		}
		report.Entries++
		if _, err := parseTimestamp(loggedAt); err != nil {
			report.InvalidTimestamps++
			report.Notes = append(report.Notes, fmt.Sprintf("entry %d: unreadable timestamp %q", id, loggedAt))
		}
		if _, ok := reference.Nutrients(name); !ok {
			report.UnknownFoods++
			report.Notes = append(report.Notes, fmt.Sprintf("entry %d: %q has no nutrient data", id, name))
		}
		if listed, ok := reference.CategoryOf(name); ok && listed != model.Category(category) {
			report.CategoryMismatch++
			report.Notes = append(report.Notes, fmt.Sprintf("entry %d: %q logged as %s but listed as %s", id, name, category, listed))
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return report, fmt.Errorf("doctor entries iterate: %w", err)
	}
	_ = rows.Close()

	profile, err := CurrentProfile(db)
	if err != nil {
		return report, err
	}
	if profile != nil {
		if _, err := strconv.Atoi(strings.TrimSpace(profile.Age)); err != nil {
			report.UnparseableAge = true
			report.Notes = append(report.Notes, fmt.Sprintf("profile age %q is not a whole number; targets use the %s group", profile.Age, nutrition.ResolveAgeGroup(profile.Age)))
		}
	}
	return report, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
