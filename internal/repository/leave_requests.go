package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/leave-manager/backend/internal/domain"
)

func (r *Repository) CreateLeaveRequest(req *domain.LeaveRequest) error {
	// status 不作为参数传入，由数据库的默认值保证新申请一定是 pending
	query := `
		INSERT INTO leave_requests (user_id, name, email, type, reason, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{req.UserID, req.Name, req.Email, req.Type, req.Reason, req.StartDate, req.EndDate}
	dst := []any{&req.ID, &req.Status, &req.CreatedAt, &req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetLeaveRequestByID(id int64) (*domain.LeaveRequest, error) {
	query := `
		SELECT user_id, name, email, type, reason, start_date, end_date, status, created_at, version
		FROM leave_requests
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	req := &domain.LeaveRequest{
		ID: id,
	}

	dst := []any{&req.UserID, &req.Name, &req.Email, &req.Type, &req.Reason, &req.StartDate, &req.EndDate, &req.Status, &req.CreatedAt, &req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return req, nil
}

func (r *Repository) GetLeaveRequestsByUserID(userID int64) ([]*domain.LeaveRequest, error) {
	// 按开始日期倒序，最近的请假时段排在最前
	query := `
		SELECT id, user_id, name, email, type, reason, start_date, end_date, status, created_at, version
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY start_date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.LeaveRequest, 0)
	for rows.Next() {
		req := &domain.LeaveRequest{}
		dst := []any{&req.ID, &req.UserID, &req.Name, &req.Email, &req.Type, &req.Reason, &req.StartDate, &req.EndDate, &req.Status, &req.CreatedAt, &req.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *Repository) GetAllLeaveRequests() ([]*domain.LeaveRequest, error) {
	query := `
		SELECT id, user_id, name, email, type, reason, start_date, end_date, status, created_at, version
		FROM leave_requests
		ORDER BY start_date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.LeaveRequest, 0)
	for rows.Next() {
		req := &domain.LeaveRequest{}
		dst := []any{&req.ID, &req.UserID, &req.Name, &req.Email, &req.Type, &req.Reason, &req.StartDate, &req.EndDate, &req.Status, &req.CreatedAt, &req.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *Repository) UpdateLeaveRequestStatus(req *domain.LeaveRequest) error {
	query := `
		UPDATE leave_requests
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, req.Status, req.ID, req.Version).Scan(&req.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteLeaveRequest(id int64) error {
	query := `
		DELETE FROM leave_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	// 删除不存在的申请应当报错，这里用 sql.ErrNoRows 统一表示
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
