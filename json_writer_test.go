package daftar

import "testing"

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("name", "Melli").
		Append("count", 3).
		Optional("memo", "").
		Optional("balance", M(0)).
		Optional("opening", M(42))
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"Melli","count":3,"opening":42}`
	if string(data) != want {
		t.Errorf("MarshalJSON = %s, want %s", data, want)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Errorf("MarshalJSON = %s, want {}", data)
	}
}
