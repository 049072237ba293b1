package dictionary

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `道本语,正字,释义
toki,语,language
pona , 好 , good
mi,我
solo
,orphan,no key
   ,blank,no key either
e,,object marker

sina,你,"you, thou"
`

func mustLoad(t *testing.T, src string) *Table {
	t.Helper()
	tab, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tab
}

func TestLoad(t *testing.T) {
	tab := mustLoad(t, sampleCSV)

	wantMapping := map[string]string{
		"toki": "语",
		"pona": "好",
		"mi":   "我",
		"e":    "",
		"sina": "你",
	}
	if !reflect.DeepEqual(tab.Mapping, wantMapping) {
		t.Errorf("Mapping = %v, want %v", tab.Mapping, wantMapping)
	}

	wantGlosses := map[string]string{
		"toki": "language",
		"pona": "good",
		"mi":   "",
		"e":    "object marker",
		"sina": "you, thou",
	}
	if !reflect.DeepEqual(tab.Glosses, wantGlosses) {
		t.Errorf("Glosses = %v, want %v", tab.Glosses, wantGlosses)
	}

	wantKeys := []string{"toki", "pona", "mi", "e", "sina"}
	if got := tab.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys = %v, want %v", got, wantKeys)
	}
}

func TestLoadDiscardsHeaderWhateverItHolds(t *testing.T) {
	tab := mustLoad(t, "toki,语,language\npona,好,good\n")
	if _, ok := tab.Lookup("toki"); ok {
		t.Fatal("first row must be treated as a header")
	}
	if rep, ok := tab.Lookup("pona"); !ok || rep != "好" {
		t.Fatalf("Lookup(pona) = %q, %v", rep, ok)
	}
}

func TestLoadBlankFirstLineIsTheHeader(t *testing.T) {
	tab := mustLoad(t, "\nword,rep,gloss\ntoki,语,language\n")
	if rep, ok := tab.Lookup("word"); !ok || rep != "rep" {
		t.Fatalf("Lookup(word) = %q, %v; the blank first line is the header", rep, ok)
	}
	if tab.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tab.Len())
	}
}

func TestReadRecordsKeepsBlankLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{
			name: "middle",
			in:   "h,r\nli,了\n\ntoki,语\n",
			want: [][]string{{"h", "r"}, {"li", "了"}, {}, {"toki", "语"}},
		},
		{
			name: "leading and trailing",
			in:   "\n\nh,r\nli,了\n\n",
			want: [][]string{{}, {}, {"h", "r"}, {"li", "了"}, {}},
		},
		{
			name: "crlf",
			in:   "h,r\r\n\r\nli,了\r\n",
			want: [][]string{{"h", "r"}, {}, {"li", "了"}},
		},
		{
			name: "quoted newline",
			in:   "h,r\n\"a\nb\",x\n\nc,d",
			want: [][]string{{"h", "r"}, {"a\nb", "x"}, {}, {"c", "d"}},
		},
		{
			name: "bom",
			in:   "\ufeff\nh,r\n",
			want: [][]string{{}, {"h", "r"}},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadRecords(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ReadRecords = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadLastRowWins(t *testing.T) {
	src := "word,rep,gloss\n" +
		"toki,语,first\n" +
		"pona,好,\n" +
		"mi,我,\n" +
		"toki,言,second\n"
	tab := mustLoad(t, src)

	if rep, _ := tab.Lookup("toki"); rep != "言" {
		t.Errorf("Lookup(toki) = %q, want 言", rep)
	}
	if g := tab.Gloss("toki"); g != "second" {
		t.Errorf("Gloss(toki) = %q, want second", g)
	}
	if tab.Len() != 3 {
		t.Errorf("Len = %d, want 3", tab.Len())
	}
	if keys := tab.Keys(); keys[0] != "toki" {
		t.Errorf("overwritten key moved: %v", keys)
	}
}

func TestLoadStripsBOM(t *testing.T) {
	tab := mustLoad(t, "\ufeffword,rep\ntoki,语\n")
	if _, ok := tab.Lookup("toki"); !ok {
		t.Fatal("toki missing")
	}
	for _, k := range tab.Keys() {
		if strings.HasPrefix(k, "\ufeff") {
			t.Fatalf("BOM leaked into key %q", k)
		}
	}
}

func TestLoadQuotedFields(t *testing.T) {
	tab := mustLoad(t, "h,r,g\n\"jan\",\"人\",\"a \"\"person\"\", someone\"\n")
	if g := tab.Gloss("jan"); g != `a "person", someone` {
		t.Fatalf("Gloss(jan) = %q", g)
	}
}

func TestLoadEmptyInput(t *testing.T) {
	tab := mustLoad(t, "")
	if tab.Len() != 0 {
		t.Fatalf("Len = %d", tab.Len())
	}
}

func TestLoadFileIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	b, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("loading the same file twice gave different tables")
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestSearch(t *testing.T) {
	tab := mustLoad(t, sampleCSV)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"toki", "pona", "mi", "e", "sina"}},
		{"   ", []string{"toki", "pona", "mi", "e", "sina"}},
		{"to", []string{"toki"}},
		{"好", []string{"pona"}},
		{"thou", []string{"sina"}},
		{"o", []string{"toki", "pona", "e", "sina"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		var got []string
		for _, e := range tab.Search(tt.query) {
			got = append(got, e.Word)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestWriteText(t *testing.T) {
	var b strings.Builder
	entries := []Entry{
		{Word: "toki", Replacement: "语", Gloss: "language"},
		{Word: "mi", Replacement: "我"},
	}
	if err := WriteText(&b, entries); err != nil {
		t.Fatal(err)
	}
	want := "toki\t语\tlanguage\nmi\t我\t\n"
	if b.String() != want {
		t.Fatalf("WriteText = %q, want %q", b.String(), want)
	}
}
