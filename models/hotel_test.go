package models

import "testing"

func TestHotelFromRecord(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		want    Hotel
		wantErr bool
	}{
		{
			name: "valid record",
			rec: Record{
				"hotel_id":    "h-1",
				"name":        "Azure Inn",
				"city":        "Monterrey",
				"total_rooms": 5,
			},
			want: Hotel{HotelID: "h-1", Name: "Azure Inn", City: "Monterrey", TotalRooms: 5},
		},
		{
			name: "json number for total_rooms",
			rec: Record{
				"hotel_id":    "h-2",
				"name":        "Harbor View",
				"city":        "Lisbon",
				"total_rooms": float64(12),
			},
			want: Hotel{HotelID: "h-2", Name: "Harbor View", City: "Lisbon", TotalRooms: 12},
		},
		{
			name: "numeric string for total_rooms",
			rec: Record{
				"hotel_id":    "h-3",
				"name":        "Old Mill",
				"city":        "Gdansk",
				"total_rooms": "7",
			},
			want: Hotel{HotelID: "h-3", Name: "Old Mill", City: "Gdansk", TotalRooms: 7},
		},
		{
			name: "missing name",
			rec: Record{
				"hotel_id":    "h-4",
				"city":        "Monterrey",
				"total_rooms": 5,
			},
			wantErr: true,
		},
		{
			name: "non-string city",
			rec: Record{
				"hotel_id":    "h-5",
				"name":        "Azure Inn",
				"city":        42,
				"total_rooms": 5,
			},
			wantErr: true,
		},
		{
			name: "fractional total_rooms",
			rec: Record{
				"hotel_id":    "h-6",
				"name":        "Azure Inn",
				"city":        "Monterrey",
				"total_rooms": 5.5,
			},
			wantErr: true,
		},
		{
			name: "non-numeric total_rooms string",
			rec: Record{
				"hotel_id":    "h-7",
				"name":        "Azure Inn",
				"city":        "Monterrey",
				"total_rooms": "many",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HotelFromRecord(tt.rec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HotelFromRecord() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if *got != tt.want {
				t.Errorf("HotelFromRecord() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestHotelToRecordRoundTrip(t *testing.T) {
	hotel := Hotel{HotelID: "h-9", Name: "Azure Inn", City: "Monterrey", TotalRooms: 5}

	back, err := HotelFromRecord(hotel.ToRecord())
	if err != nil {
		t.Fatalf("HotelFromRecord() error = %v", err)
	}
	if *back != hotel {
		t.Errorf("round trip changed hotel: got %+v, want %+v", *back, hotel)
	}
}
