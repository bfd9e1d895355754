package iges

import "testing"

type fakeSink struct {
	des []*DirEntry
	pds []*ParamData
}

func (s *fakeSink) WriteDE(de *DirEntry) error {
	s.des = append(s.des, de)
	return nil
}

func (s *fakeSink) WritePD(pd *ParamData) error {
	s.pds = append(s.pds, pd)
	return nil
}

// Invariant 7: every referenced entity has a lower DE sequence number
// than any referrer.
func TestWriteOrderTopological(t *testing.T) {
	m := NewModel()
	ce, _ := m.CreateEntity(TypeCompositeCurve102)
	composite := ce.(*CompositeCurve102)
	le1, _ := m.CreateEntity(TypeLine110)
	line1 := le1.(*Line110)
	le2, _ := m.CreateEntity(TypeLine110)
	line2 := le2.(*Line110)

	if err := composite.AddChild(line1); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := composite.AddChild(line2); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	sink := &fakeSink{}
	if err := m.WriteToRecords(sink); err != nil {
		t.Fatalf("WriteToRecords: %v", err)
	}

	if line1.DESeq() >= composite.DESeq() {
		t.Errorf("line1 seq %d should be < composite seq %d", line1.DESeq(), composite.DESeq())
	}
	if line2.DESeq() >= composite.DESeq() {
		t.Errorf("line2 seq %d should be < composite seq %d", line2.DESeq(), composite.DESeq())
	}
	if len(sink.des) != 3 || len(sink.pds) != 3 {
		t.Fatalf("got %d DEs / %d PDs, want 3/3", len(sink.des), len(sink.pds))
	}
}

// A child shared by two parents must still appear exactly once in write
// order, at a position earlier than both parents.
func TestWriteOrderSharedChildOnce(t *testing.T) {
	m := NewModel()
	ce1, _ := m.CreateEntity(TypeCompositeCurve102)
	c1 := ce1.(*CompositeCurve102)
	ce2, _ := m.CreateEntity(TypeCompositeCurve102)
	c2 := ce2.(*CompositeCurve102)
	le, _ := m.CreateEntity(TypeLine110)
	shared := le.(*Line110)

	if err := c1.AddChild(shared); err != nil {
		t.Fatalf("AddChild(c1): %v", err)
	}
	if err := c2.AddChild(shared); err != nil {
		t.Fatalf("AddChild(c2): %v", err)
	}

	order := m.writeOrder()
	count := 0
	sharedIdx, c1Idx, c2Idx := -1, -1, -1
	for i, e := range order {
		if e == shared {
			count++
			sharedIdx = i
		}
		if e == c1 {
			c1Idx = i
		}
		if e == c2 {
			c2Idx = i
		}
	}
	if count != 1 {
		t.Fatalf("shared child appeared %d times in write order, want 1", count)
	}
	if sharedIdx >= c1Idx || sharedIdx >= c2Idx {
		t.Errorf("shared child at %d should precede both parents at %d and %d", sharedIdx, c1Idx, c2Idx)
	}
}
