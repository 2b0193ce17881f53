package purchase

import "testing"

func TestPurchaseLifecycle(t *testing.T) {
	tests := []struct {
		status        PurchaseStatus
		canBeReceived bool
		canBeVoided   bool
	}{
		{PurchaseStatusDraft, true, false},
		{PurchaseStatusReceived, false, true},
		{PurchaseStatusVoided, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := &Purchase{Status: tt.status}
			if got := p.CanBeReceived(); got != tt.canBeReceived {
				t.Errorf("CanBeReceived() = %v, want %v", got, tt.canBeReceived)
			}
			if got := p.CanBeVoided(); got != tt.canBeVoided {
				t.Errorf("CanBeVoided() = %v, want %v", got, tt.canBeVoided)
			}
		})
	}
}
