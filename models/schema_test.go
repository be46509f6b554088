package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, dest interface{}) *schema.Schema {
	t.Helper()
	sch, err := schema.Parse(dest, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("failed to parse schema: %v", err)
	}
	return sch
}

func findIndex(t *testing.T, dest interface{}, name string) *schema.Index {
	t.Helper()
	for _, idx := range parseSchema(t, dest).ParseIndexes() {
		if idx.Name == name {
			return idx
		}
	}
	t.Fatalf("index %q not found", name)
	return nil
}

// The notification settings endpoint updates these columns by name; the
// names must match what gorm derives from the User fields.
func TestUserNotificationColumnNames(t *testing.T) {
	sch := parseSchema(t, &User{})
	for _, column := range []string{"appointment_reminders", "whats_app_notifications", "sms_notifications"} {
		if _, ok := sch.FieldsByDBName[column]; !ok {
			t.Fatalf("expected users column %q", column)
		}
	}
	if _, ok := sch.FieldsByDBName["whatsapp_notifications"]; ok {
		t.Fatalf("users table must not have a whatsapp_notifications column")
	}
}

// A soft-deleted client must not block re-registering the same phone number.
func TestClientPhoneIndexIgnoresDeletedRows(t *testing.T) {
	idx := findIndex(t, &Client{}, "idx_professional_phone")
	if idx.Class != "UNIQUE" {
		t.Fatalf("expected unique index, got class %q", idx.Class)
	}
	if idx.Where != "deleted_at IS NULL" {
		t.Fatalf("expected index restricted to live rows, got where %q", idx.Where)
	}
	if len(idx.Fields) != 2 || idx.Fields[0].DBName != "professional_id" || idx.Fields[1].DBName != "phone" {
		t.Fatalf("unexpected index fields: %+v", idx.Fields)
	}
}

// Cancelled and soft-deleted appointments do not occupy their slot.
func TestAppointmentSlotIndexExcludesCancelledAndDeleted(t *testing.T) {
	idx := findIndex(t, &Appointment{}, "idx_professional_slot")
	if idx.Class != "UNIQUE" {
		t.Fatalf("expected unique index, got class %q", idx.Class)
	}
	if idx.Where != "status <> 'cancelled' AND deleted_at IS NULL" {
		t.Fatalf("unexpected where clause %q", idx.Where)
	}
	if len(idx.Fields) != 3 ||
		idx.Fields[0].DBName != "professional_id" ||
		idx.Fields[1].DBName != "date" ||
		idx.Fields[2].DBName != "time" {
		t.Fatalf("unexpected index fields: %+v", idx.Fields)
	}
}
