package hris

// Wire shapes mirror the public API field names. Identity fields are
// server-assigned; create/update handlers ignore client-supplied IDs.

type Department struct {
	DepartmentID int64  `json:"DepartmentID"`
	DeptName     string `json:"DeptName"`
}

type Employee struct {
	EmployeeID   int64   `json:"EmployeeID"`
	FirstName    string  `json:"FirstName"`
	LastName     string  `json:"LastName"`
	DOB          *string `json:"DOB"`
	Phone        *string `json:"Phone"`
	Email        *string `json:"Email"`
	Gender       Gender  `json:"Gender,omitempty"`
	DepartmentID *int64  `json:"DepartmentID"`
}

type Attendance struct {
	AttendanceID int64   `json:"AttendanceID"`
	EmployeeID   int64   `json:"EmployeeID"`
	Date         string  `json:"Date"`
	TimeIn       *string `json:"timeIn"`
	TimeOut      *string `json:"timeOut"`
}

type Payroll struct {
	PayrollID  int64   `json:"PayrollID"`
	EmployeeID int64   `json:"EmployeeID"`
	Salary     float64 `json:"Salary"`
	Bonus      float64 `json:"Bonus"`
	Deduction  float64 `json:"Deduction"`
	PayDate    string  `json:"PayDate"`
}

type PerformanceReview struct {
	ReviewID     int64   `json:"ReviewID"`
	EmployeeID   int64   `json:"EmployeeID"`
	ReviewDate   string  `json:"ReviewDate"`
	Score        int     `json:"Score"`
	Comments     *string `json:"Comments"`
	WorkingHours int     `json:"WorkingHours"`
}

type Admin struct {
	AdminID   int64   `json:"AdminID"`
	FirstName *string `json:"FirstName"`
	LastName  *string `json:"LastName"`
	Email     *string `json:"Email"`
}

type UserAccount struct {
	UserID   int64  `json:"UserID"`
	AdminID  int64  `json:"adminID"`
	Username string `json:"Username"`
	// Accepted on input, bcrypt-hashed at rest, never echoed back.
	Password string `json:"password,omitempty"`
}

// Stats backs the service banner row counts.
type Stats struct {
	Users     int64 `json:"users"`
	Admins    int64 `json:"admins"`
	Employees int64 `json:"employees"`
}
