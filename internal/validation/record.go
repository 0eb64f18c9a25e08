package validation

import (
	"fmt"
	"regexp"

	"github.com/iudanet/offlinesync/internal/models"
)

// InfoAreaPattern определяет допустимый формат идентификатора info area
// Заглавная латинская буква, затем заглавные буквы или цифры
// Длина: 1-8 символов
var InfoAreaPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,7}$`)

// RecordIDPattern - серверный id записи или локальный placeholder
var RecordIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.:\-]+$`)

const (
	// MaxRecordIDLen максимальная длина record id
	MaxRecordIDLen = 64
)

// ValidateInfoArea проверяет, что info area соответствует требованиям
func ValidateInfoArea(infoArea string) error {
	if infoArea == "" {
		return fmt.Errorf("info area cannot be empty")
	}

	if !InfoAreaPattern.MatchString(infoArea) {
		return fmt.Errorf("invalid info area %q: must be 1-8 uppercase letters or digits starting with a letter", infoArea)
	}

	return nil
}

// ValidateRecordID проверяет record id. Пустой id допустим только для новых записей,
// им будет присвоен placeholder
func ValidateRecordID(recordID string, mode models.RecordMode) error {
	if recordID == "" {
		if mode == models.RecordModeNew {
			return nil
		}
		return fmt.Errorf("record id cannot be empty for mode %s", mode)
	}

	if len(recordID) > MaxRecordIDLen {
		return fmt.Errorf("record id must not exceed %d characters", MaxRecordIDLen)
	}

	if !RecordIDPattern.MatchString(recordID) {
		return fmt.Errorf("invalid record id %q", recordID)
	}

	return nil
}

// ValidateRecordMode проверяет, что режим записи известен
func ValidateRecordMode(mode models.RecordMode) error {
	switch mode {
	case models.RecordModeNew, models.RecordModeUpdate, models.RecordModeDelete,
		models.RecordModeSync, models.RecordModeSyncUpdate:
		return nil
	default:
		return fmt.Errorf("unknown record mode %q", mode)
	}
}

// ValidateRecord проверяет запись целиком, включая ее связи
func ValidateRecord(rec *models.Record) error {
	if err := ValidateInfoArea(rec.InfoArea); err != nil {
		return err
	}
	if err := ValidateRecordMode(rec.Mode); err != nil {
		return err
	}
	if err := ValidateRecordID(rec.RecordID, rec.Mode); err != nil {
		return err
	}

	for _, f := range rec.Fields {
		if f.FieldID < 0 {
			return fmt.Errorf("field id cannot be negative: %d", f.FieldID)
		}
	}

	for _, l := range rec.Links {
		if err := ValidateInfoArea(l.InfoArea); err != nil {
			return fmt.Errorf("link %s: %w", l.Key(), err)
		}
		if l.RecordID == "" {
			return fmt.Errorf("link %s: target record id cannot be empty", l.Key())
		}
	}

	return nil
}
