package cvdash

import "testing"

func TestTimelineSample(t *testing.T) {
	spans := Timeline(loadSample(t), 2026)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Organization != "Northwind Systems" || spans[0].Start != 2020 || spans[0].End != 2026 {
		t.Fatalf("unexpected ongoing span %+v", spans[0])
	}
	if spans[0].Years() != 7 {
		t.Fatalf("expected 7 years, got %d", spans[0].Years())
	}
	if spans[1].Start != 2015 || spans[1].End != 2020 || spans[1].Years() != 6 {
		t.Fatalf("unexpected closed span %+v", spans[1])
	}
}

func TestTimelineSkipsUnparseableStart(t *testing.T) {
	doc := parseTest(t, `,"work_experience":[
		{"organization":"A","role":{"text":"r"},"dates":{"start":"soon","end":"2020"},"responsibilities":[]},
		{"organization":"B","role":{"text":"r"},"dates":{"start":"Jan 2018","end":""},"responsibilities":[]},
		{"organization":"C","role":{"text":"r"},"dates":{"start":"2019","end":"2017"},"responsibilities":[]}]`)
	spans := Timeline(doc, 2026)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %+v", spans)
	}
	if spans[0].Organization != "B" || spans[0].End != 2018 || spans[0].Years() != 1 {
		t.Fatalf("expected missing end to collapse to start, got %+v", spans[0])
	}
	if spans[1].Years() != 1 {
		t.Fatalf("expected reversed span to count as 1 year, got %d", spans[1].Years())
	}
}

func TestTimelineWithoutExperience(t *testing.T) {
	if spans := Timeline(parseTest(t, ""), 2026); spans != nil {
		t.Fatalf("expected nil spans, got %+v", spans)
	}
}
