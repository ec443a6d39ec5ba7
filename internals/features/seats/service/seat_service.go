// file: internals/features/seats/service/seat_service.go
package service

import (
	"strings"

	studentModel "bimbelku_backend/internals/features/students/model"
)

/* ===================== Types ===================== */

// Seat satu kursi pada denah: terisi atau kosong.
type Seat struct {
	Number   int                        `json:"number"`
	Occupied bool                       `json:"occupied"`
	Student  *studentModel.StudentModel `json:"student,omitempty"`
}

// SeatConflict siswa yang tidak bisa dipetakan ke denah:
// nomor kursi di luar rentang, atau kursi sudah ditempati siswa lain.
// Occupant terisi pada konflik duplicate_seat (siswa yang menang kursi).
type SeatConflict struct {
	Student  *studentModel.StudentModel `json:"student"`
	Occupant *studentModel.StudentModel `json:"occupant,omitempty"`
	Reason   string                     `json:"reason"`
}

const (
	ConflictOutOfRange = "out_of_range"
	ConflictDuplicate  = "duplicate_seat"
)

/* ===================== Reconcile ===================== */

// Reconcile memetakan siswa ke denah kursi 1..totalSeats.
// Fail-open: totalSeats <= 0 menghasilkan denah kosong tanpa error,
// semua siswa masuk daftar konflik out_of_range.
// Siswa pertama yang menempati sebuah kursi menang; sisanya jadi konflik.
func Reconcile(totalSeats int, students []studentModel.StudentModel) ([]Seat, []int, []SeatConflict) {
	if totalSeats < 0 {
		totalSeats = 0
	}

	seats := make([]Seat, totalSeats)
	for i := range seats {
		seats[i].Number = i + 1
	}

	var conflicts []SeatConflict
	for i := range students {
		s := &students[i]
		n := s.StudentSeatNumber
		if n < 1 || n > totalSeats {
			conflicts = append(conflicts, SeatConflict{Student: s, Reason: ConflictOutOfRange})
			continue
		}
		if seats[n-1].Occupied {
			conflicts = append(conflicts, SeatConflict{
				Student:  s,
				Occupant: seats[n-1].Student,
				Reason:   ConflictDuplicate,
			})
			continue
		}
		seats[n-1].Occupied = true
		seats[n-1].Student = s
	}

	available := make([]int, 0, totalSeats)
	for _, seat := range seats {
		if !seat.Occupied {
			available = append(available, seat.Number)
		}
	}

	return seats, available, conflicts
}

/* ===================== Search ===================== */

// SearchMatch satu kursi hasil pencarian.
type SearchMatch struct {
	SeatNumber  int    `json:"seat_number"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
}

// SearchResult hasil pencarian nama berawalan.
type SearchResult struct {
	Performed bool          `json:"performed"`
	Matches   []SearchMatch `json:"matches"`
}

// SearchByNamePrefix mencari siswa yang namanya diawali query (case-insensitive,
// query di-trim dulu). Query kosong berarti pencarian tidak dilakukan.
// Hasil berurutan sesuai urutan siswa yang diberikan (urutan kursi).
func SearchByNamePrefix(students []studentModel.StudentModel, query string) SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return SearchResult{Performed: false, Matches: []SearchMatch{}}
	}

	result := SearchResult{Performed: true, Matches: []SearchMatch{}}
	for i := range students {
		name := strings.ToLower(strings.TrimSpace(students[i].StudentName))
		if strings.HasPrefix(name, q) {
			result.Matches = append(result.Matches, SearchMatch{
				SeatNumber:  students[i].StudentSeatNumber,
				StudentID:   students[i].StudentID.String(),
				StudentName: students[i].StudentName,
			})
		}
	}
	return result
}
