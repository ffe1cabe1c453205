package events

import (
	"encoding/json"
	"testing"
	"time"

	"eldercare-panel/internal/platform/dateutil"
)

func TestValidateForm_DateRange(t *testing.T) {
	bad := ValidateForm(Form{Title: "X", StartDateTime: "2024-07-01T10:00", EndDateTime: "2024-07-01T09:00"}, dateutil.Argentina)
	if bad.Valid() {
		t.Fatalf("end before start must fail")
	}
	if got := bad.For("end_datetime"); len(got) != 1 || got[0] != MsgEndBeforeStart {
		t.Fatalf("unexpected messages %v", bad.Messages())
	}

	ok := ValidateForm(Form{Title: "X", StartDateTime: "2024-07-01T10:00", EndDateTime: "2024-07-01T11:00"}, dateutil.Argentina)
	if !ok.Valid() {
		t.Fatalf("expected valid, got %v", ok.Messages())
	}

	same := ValidateForm(Form{Title: "X", StartDateTime: "2024-07-01T10:00", EndDateTime: "2024-07-01T10:00"}, dateutil.Argentina)
	if !same.Valid() {
		t.Fatalf("end equal to start is allowed, got %v", same.Messages())
	}
}

func TestValidateForm_TitleRequired(t *testing.T) {
	errs := ValidateForm(Form{Title: "   "}, dateutil.Argentina)
	if msgs := errs.Messages(); len(msgs) != 1 || msgs[0] != MsgTitleRequired {
		t.Fatalf("unexpected messages %v", msgs)
	}
}

func TestValidateForm_OneSidedRangeIsFine(t *testing.T) {
	if errs := ValidateForm(Form{Title: "X", StartDateTime: "2024-07-01T10:00"}, dateutil.Argentina); !errs.Valid() {
		t.Fatalf("only start given should be valid, got %v", errs.Messages())
	}
	if errs := ValidateForm(Form{Title: "X", EndDateTime: "2024-07-01T10:00"}, dateutil.Argentina); !errs.Valid() {
		t.Fatalf("only end given should be valid, got %v", errs.Messages())
	}
}

func TestValidateForm_ReportsEveryProblem(t *testing.T) {
	errs := ValidateForm(Form{StartDateTime: "mañana", EndDateTime: "2024-07-01T10:00"}, dateutil.Argentina)
	if len(errs) != 2 {
		t.Fatalf("expected title and start errors, got %v", errs.Messages())
	}
	if len(errs.For("title")) != 1 || len(errs.For("start_datetime")) != 1 {
		t.Fatalf("unexpected fields %+v", errs)
	}
}

func TestValidateForm_MixedZonesUseSameLocationAsPayload(t *testing.T) {
	// 10:00 en Argentina son 13:00Z, después de un fin a las 12:00Z.
	f := Form{Title: "X", StartDateTime: "2024-07-01T10:00", EndDateTime: "2024-07-01T12:00:00Z"}

	errs := ValidateForm(f, dateutil.Argentina)
	if got := errs.For("end_datetime"); len(got) != 1 || got[0] != MsgEndBeforeStart {
		t.Fatalf("expected end before start, got %v", errs.Messages())
	}

	if errs := ValidateForm(f, time.UTC); !errs.Valid() {
		t.Fatalf("in UTC the range is valid, got %v", errs.Messages())
	}
}

func TestPayload_ConvertsLocalTimesToUTC(t *testing.T) {
	f := Form{
		Title:         " Control ",
		EventType:     EventTypeMedical,
		StartDateTime: "2024-07-01T10:00",
		EndDateTime:   "2024-07-01T11:00",
	}
	p := f.Payload(dateutil.Argentina)
	if p.Title != "Control" || p.StartDateTime != "2024-07-01T13:00:00Z" || p.EndDateTime != "2024-07-01T14:00:00Z" {
		t.Fatalf("unexpected payload %+v", p)
	}

	b, _ := json.Marshal(Form{Title: "Sin fechas"}.Payload(time.UTC))
	if string(b) != `{"title":"Sin fechas"}` {
		t.Fatalf("empty fields must be omitted, got %s", b)
	}
}

func TestFormFrom_UsesDateTimeLocal(t *testing.T) {
	f := FormFrom(Event{Title: "Paseo", StartDateTime: "2024-07-01T13:00:00Z"}, dateutil.Argentina)
	if f.StartDateTime != "2024-07-01T10:00" || f.EndDateTime != "" {
		t.Fatalf("unexpected form %+v", f)
	}
}

func TestNewView(t *testing.T) {
	v := NewView(Event{ID: "1", StartDateTime: "2024-07-01T13:00:00Z"}, dateutil.Argentina)
	if v.Start == nil || v.Start.Fecha != "01/07/2024" || v.Start.Hora != "10:00" || v.End != nil {
		t.Fatalf("unexpected view %+v", v)
	}
}
