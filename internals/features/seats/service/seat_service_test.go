package service

import (
	"reflect"
	"testing"

	studentModel "bimbelku_backend/internals/features/students/model"
)

func mkStudent(name string, seat int) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentName:       name,
		StudentSeatNumber: seat,
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name          string
		totalSeats    int
		students      []studentModel.StudentModel
		wantOccupied  []int
		wantAvailable []int
		wantConflicts int
	}{
		{
			name:          "denah kosong tanpa siswa",
			totalSeats:    3,
			students:      nil,
			wantOccupied:  []int{},
			wantAvailable: []int{1, 2, 3},
		},
		{
			name:       "siswa menempati kursi sesuai nomor",
			totalSeats: 5,
			students: []studentModel.StudentModel{
				mkStudent("Andi", 2),
				mkStudent("Budi", 5),
			},
			wantOccupied:  []int{2, 5},
			wantAvailable: []int{1, 3, 4},
		},
		{
			name:       "kursi di luar rentang jadi konflik",
			totalSeats: 3,
			students: []studentModel.StudentModel{
				mkStudent("Andi", 1),
				mkStudent("Budi", 4),
				mkStudent("Citra", 0),
			},
			wantOccupied:  []int{1},
			wantAvailable: []int{2, 3},
			wantConflicts: 2,
		},
		{
			name:       "kursi ganda: siswa pertama menang",
			totalSeats: 3,
			students: []studentModel.StudentModel{
				mkStudent("Andi", 2),
				mkStudent("Budi", 2),
			},
			wantOccupied:  []int{2},
			wantAvailable: []int{1, 3},
			wantConflicts: 1,
		},
		{
			name:       "kapasitas nol: semua siswa konflik, tidak panic",
			totalSeats: 0,
			students: []studentModel.StudentModel{
				mkStudent("Andi", 1),
			},
			wantOccupied:  []int{},
			wantAvailable: []int{},
			wantConflicts: 1,
		},
		{
			name:       "kapasitas negatif dianggap nol",
			totalSeats: -3,
			students: []studentModel.StudentModel{
				mkStudent("Andi", 1),
			},
			wantOccupied:  []int{},
			wantAvailable: []int{},
			wantConflicts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seats, available, conflicts := Reconcile(tt.totalSeats, tt.students)

			wantLen := tt.totalSeats
			if wantLen < 0 {
				wantLen = 0
			}
			if len(seats) != wantLen {
				t.Fatalf("jumlah kursi = %d, want %d", len(seats), wantLen)
			}

			var occupied []int
			for _, s := range seats {
				if s.Occupied {
					occupied = append(occupied, s.Number)
					if s.Student == nil {
						t.Errorf("kursi %d occupied tapi Student nil", s.Number)
					}
				} else if s.Student != nil {
					t.Errorf("kursi %d kosong tapi Student terisi", s.Number)
				}
			}
			if occupied == nil {
				occupied = []int{}
			}
			if !reflect.DeepEqual(occupied, tt.wantOccupied) {
				t.Errorf("occupied = %v, want %v", occupied, tt.wantOccupied)
			}
			if !reflect.DeepEqual(available, tt.wantAvailable) {
				t.Errorf("available = %v, want %v", available, tt.wantAvailable)
			}
			if len(conflicts) != tt.wantConflicts {
				t.Errorf("conflicts = %d, want %d", len(conflicts), tt.wantConflicts)
			}
		})
	}
}

func TestReconcileDuplicateReportsOccupant(t *testing.T) {
	students := []studentModel.StudentModel{
		mkStudent("Andi", 2),
		mkStudent("Budi", 2),
	}
	_, _, conflicts := Reconcile(3, students)
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1", len(conflicts))
	}
	c := conflicts[0]
	if c.Reason != ConflictDuplicate {
		t.Errorf("reason = %q, want %q", c.Reason, ConflictDuplicate)
	}
	if c.Student == nil || c.Student.StudentName != "Budi" {
		t.Errorf("siswa konflik = %+v, want Budi", c.Student)
	}
	if c.Occupant == nil || c.Occupant.StudentName != "Andi" {
		t.Errorf("penghuni kursi = %+v, want Andi", c.Occupant)
	}
}

func TestReconcileAfterSeatMove(t *testing.T) {
	// Pindah kursi 3 -> 7: kursi lama bebas, kursi baru terisi.
	moved := mkStudent("Andi", 7)
	seats, available, conflicts := Reconcile(8, []studentModel.StudentModel{moved})

	if seats[2].Occupied {
		t.Error("kursi 3 masih terisi setelah pindah")
	}
	if !seats[6].Occupied || seats[6].Student.StudentName != "Andi" {
		t.Errorf("kursi 7 = %+v, want Andi", seats[6])
	}
	if len(conflicts) != 0 {
		t.Errorf("conflicts = %v, want kosong", conflicts)
	}
	for _, n := range available {
		if n == 7 {
			t.Error("kursi 7 tidak boleh ada di daftar kosong")
		}
	}
}

func TestReconcileSeatNumbersSequential(t *testing.T) {
	seats, _, _ := Reconcile(4, nil)
	for i, s := range seats {
		if s.Number != i+1 {
			t.Fatalf("seats[%d].Number = %d, want %d", i, s.Number, i+1)
		}
	}
}

func TestSearchByNamePrefix(t *testing.T) {
	students := []studentModel.StudentModel{
		mkStudent("Andi Wijaya", 1),
		mkStudent("  Anisa Putri", 3),
		mkStudent("Budi Santoso", 5),
		mkStudent("anton", 7),
	}

	seatsOf := func(r SearchResult) []int {
		out := make([]int, 0, len(r.Matches))
		for _, m := range r.Matches {
			out = append(out, m.SeatNumber)
		}
		return out
	}

	tests := []struct {
		name          string
		query         string
		wantPerformed bool
		wantSeats     []int
	}{
		{"query kosong tidak mencari", "", false, []int{}},
		{"query spasi saja tidak mencari", "   ", false, []int{}},
		{"prefix case-insensitive", "AN", true, []int{1, 3, 7}},
		{"query dengan spasi pinggir di-trim", "  bu ", true, []int{5}},
		{"tidak ada hasil", "zul", true, []int{}},
		{"substring di tengah tidak cocok", "santoso", true, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchByNamePrefix(students, tt.query)
			if got.Performed != tt.wantPerformed {
				t.Errorf("Performed = %v, want %v", got.Performed, tt.wantPerformed)
			}
			if !reflect.DeepEqual(seatsOf(got), tt.wantSeats) {
				t.Errorf("seat numbers = %v, want %v", seatsOf(got), tt.wantSeats)
			}
		})
	}
}

func TestSearchMatchCarriesName(t *testing.T) {
	students := []studentModel.StudentModel{mkStudent("Anita", 4)}
	got := SearchByNamePrefix(students, "ani")
	if len(got.Matches) != 1 || got.Matches[0].StudentName != "Anita" {
		t.Fatalf("matches = %+v, want Anita di kursi 4", got.Matches)
	}
}
