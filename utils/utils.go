package utils

import (
	"fmt"
	"log"

	"github.com/tobeqz/spotify-manage/models"
)

// ValidateRecord rejects decoded records that cannot have come from a
// completed write, e.g. a slot truncated by a racing writer.
func ValidateRecord(m *models.Metadata) error {
	if m == nil {
		return fmt.Errorf("record is null")
	}
	if m.Title == "" {
		return fmt.Errorf("record missing title")
	}
	if m.Timestamp.IsZero() {
		return fmt.Errorf("record missing timestamp")
	}
	return nil
}

func LogFunc(modName string, fstr string, i ...interface{}) {
	if i != nil {
		log.Printf("%s\t: "+fmt.Sprintf(fstr, i...), modName)
	} else {
		log.Printf("%s\t: "+fstr, modName)
	}
}
