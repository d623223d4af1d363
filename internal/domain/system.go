package domain

import "time"

// Operator is an admin panel account. Level "admin" is required for all
// /api/admin routes; "viewer" accounts can authenticate but are denied.
type Operator struct {
	ID         int64     `json:"id,string" form:"id"`
	Realname   string    `json:"realname" form:"realname"`
	Email      string    `gorm:"index" json:"email" form:"email"`
	Username   string    `gorm:"uniqueIndex" json:"username" form:"username"`
	Password   string    `json:"-" form:"password"`
	Level      string    `json:"level" form:"level"`
	Status     string    `json:"status" form:"status"`
	ResetToken string    `gorm:"size:128" json:"-"`
	LastLogin  time.Time `json:"last_login"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Operator) TableName() string {
	return "sys_operator"
}

// OperatorLog records admin mutations for audit.
type OperatorLog struct {
	ID        int64     `json:"id,string"`
	OprName   string    `json:"opr_name"`
	OprIP     string    `json:"opr_ip"`
	OptAction string    `json:"opt_action"`
	OptDesc   string    `json:"opt_desc"`
	OptTime   time.Time `json:"opt_time"`
}

func (OperatorLog) TableName() string {
	return "sys_operator_log"
}
