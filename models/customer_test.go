package models

import "testing"

func TestCustomerFromRecord(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		want    Customer
		wantErr bool
	}{
		{
			name: "valid record",
			rec: Record{
				"customer_id": "c-1",
				"name":        "Ana Torres",
				"email":       "ana@example.com",
			},
			want: Customer{CustomerID: "c-1", Name: "Ana Torres", Email: "ana@example.com"},
		},
		{
			name: "missing email",
			rec: Record{
				"customer_id": "c-2",
				"name":        "Ana Torres",
			},
			wantErr: true,
		},
		{
			name: "non-string customer_id",
			rec: Record{
				"customer_id": 17,
				"name":        "Ana Torres",
				"email":       "ana@example.com",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CustomerFromRecord(tt.rec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CustomerFromRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if *got != tt.want {
				t.Errorf("CustomerFromRecord() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestCustomerToRecordRoundTrip(t *testing.T) {
	customer := Customer{CustomerID: "c-3", Name: "Ana Torres", Email: "ana@example.com"}

	back, err := CustomerFromRecord(customer.ToRecord())
	if err != nil {
		t.Fatalf("CustomerFromRecord() error = %v", err)
	}
	if *back != customer {
		t.Errorf("round trip changed customer: got %+v, want %+v", *back, customer)
	}
}
