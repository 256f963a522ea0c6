package orders

import "testing"

func TestStatusGraph(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusProcessing},
		{StatusPending, StatusCancelled},
		{StatusProcessing, StatusShipped},
		{StatusProcessing, StatusCancelled},
		{StatusShipped, StatusCompleted},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusCompleted, StatusPending},
		{StatusCancelled, StatusPending},
		{StatusPending, StatusShipped},
		{StatusPending, StatusCompleted},
		{StatusShipped, StatusCancelled},
		{StatusShipped, StatusPending},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	if !Terminal(StatusCompleted) || !Terminal(StatusCancelled) {
		t.Fatalf("Completed and Cancelled must be terminal")
	}
	if Terminal(StatusPending) || Terminal(StatusProcessing) || Terminal(StatusShipped) {
		t.Fatalf("non-terminal status reported terminal")
	}
}

func TestParseStatus(t *testing.T) {
	if _, ok := ParseStatus("Shipped"); !ok {
		t.Fatalf("expected Shipped to parse")
	}
	for _, bad := range []string{"", "shipped", "Delivered", "PENDING"} {
		if _, ok := ParseStatus(bad); ok {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
