// Package buntdb backs the engine's store boundaries with an embedded
// key-value file. It is the reference store for the CLI and for seeding;
// production deployments plug their own repositories into the same
// interfaces.
package buntdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/buntdb"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
)

// Store implements PolicyRepository, AttendanceRepository and
// SalaryRepository over a single buntdb file.
type Store struct {
	db *buntdb.DB
}

// Open opens or creates the store file. Pass ":memory:" for an ephemeral
// store.
func Open(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func policyKey(companyID string) string {
	return "policy:" + companyID
}

func salaryKey(companyID, employeeID string) string {
	return fmt.Sprintf("salary:%s:%s", companyID, employeeID)
}

func attendanceKey(companyID, employeeID string, date time.Time) string {
	return fmt.Sprintf("attendance:%s:%s:%s", companyID, employeeID, date.Format("2006-01-02"))
}

// ========== POLICY ==========

func (s *Store) GetCompanyPolicy(_ context.Context, companyID string) (policy.CompanyPolicy, error) {
	var p policy.CompanyPolicy
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(policyKey(companyID))
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(v), &p)
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return policy.CompanyPolicy{}, policy.ErrPolicyNotFound
	} else if err != nil {
		return policy.CompanyPolicy{}, err
	}
	return p, nil
}

func (s *Store) SaveCompanyPolicy(_ context.Context, p policy.CompanyPolicy) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(p)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(policyKey(p.CompanyID), string(bs), nil)
		return err
	})
}

// ========== SALARY ==========

func (s *Store) GetSalaryInfo(_ context.Context, companyID, employeeID string) (payroll.EmployeeSalaryInfo, error) {
	var info payroll.EmployeeSalaryInfo
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(salaryKey(companyID, employeeID))
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(v), &info)
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return payroll.EmployeeSalaryInfo{}, payroll.ErrSalaryInfoNotFound
	} else if err != nil {
		return payroll.EmployeeSalaryInfo{}, err
	}
	return info, nil
}

func (s *Store) ListActive(_ context.Context, companyID string) ([]payroll.EmployeeSalaryInfo, error) {
	var infos []payroll.EmployeeSalaryInfo
	err := s.db.View(func(tx *buntdb.Tx) error {
		var inner error
		// Keys ascend lexicographically, which orders rows by employee ID.
		tx.AscendKeys(salaryKey(companyID, "*"), func(_, v string) bool {
			var info payroll.EmployeeSalaryInfo
			if inner = json.Unmarshal([]byte(v), &info); inner != nil {
				return false
			}
			infos = append(infos, info)
			return true
		})
		return inner
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

func (s *Store) SaveSalaryInfo(_ context.Context, companyID string, info payroll.EmployeeSalaryInfo) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(info)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(salaryKey(companyID, info.EmployeeID), string(bs), nil)
		return err
	})
}

// ========== ATTENDANCE ==========

func (s *Store) ListDays(_ context.Context, companyID, employeeID string, from, to time.Time) ([]attendance.Day, error) {
	var days []attendance.Day
	err := s.db.View(func(tx *buntdb.Tx) error {
		var inner error
		// Date keys sort lexicographically in chronological order.
		tx.AscendKeys(fmt.Sprintf("attendance:%s:%s:*", companyID, employeeID), func(_, v string) bool {
			var day attendance.Day
			if inner = json.Unmarshal([]byte(v), &day); inner != nil {
				return false
			}
			if !day.Date.Before(from) && !day.Date.After(to) {
				days = append(days, day)
			}
			return true
		})
		return inner
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (s *Store) SaveDay(_ context.Context, companyID, employeeID string, day attendance.Day) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		bs, err := json.Marshal(day)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(attendanceKey(companyID, employeeID, day.Date), string(bs), nil)
		return err
	})
}
