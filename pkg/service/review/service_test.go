package review

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

type fakeResolver struct {
	dbID uint
	err  error
}

func (f *fakeResolver) FindDBID(_ context.Context, _ string) (uint, error) {
	return f.dbID, f.err
}

type fakeStatusFinder struct {
	status string
}

func (f *fakeStatusFinder) FindStatus(_ context.Context, _ string, _ uint) (string, error) {
	return f.status, nil
}

// fakeReviewRepo 是 ReviewRepository[*model.BooksReview] 的内存桩。
type fakeReviewRepo struct {
	created  *model.CreateReviewParams
	existing *model.BooksReview
	deleted  bool
}

func (f *fakeReviewRepo) Create(_ context.Context, params *model.CreateReviewParams) (*model.BooksReview, error) {
	f.created = params
	return &model.BooksReview{ReviewCore: model.ReviewCore{
		Username:   params.Username,
		Review:     params.Review,
		ReviewHTML: params.ReviewHTML,
	}}, nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, _ string) (*model.BooksReview, error) {
	if f.existing == nil {
		return nil, constant.ErrNotFound
	}
	return f.existing, nil
}

func (f *fakeReviewRepo) ListByArticle(_ context.Context, _ uint) ([]*model.BooksReview, error) {
	return nil, nil
}

func (f *fakeReviewRepo) ListByUser(_ context.Context, _ string) ([]*model.BooksReview, error) {
	return nil, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, _ string, _ *model.UpdateReviewParams) (*model.BooksReview, error) {
	return f.existing, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, _ string) error {
	f.deleted = true
	return nil
}

func TestService_Create_追踪状态前置条件(t *testing.T) {
	requester := &model.Requester{Username: "alice", Role: "USER"}

	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{name: "没有追踪记录不能评测", status: "", wantErr: constant.ErrReviewNotQualified},
		{name: "只在计划中不能评测", status: constant.WallStatusInPlans, wantErr: constant.ErrReviewNotQualified},
		{name: "进行中可以评测", status: constant.WallStatusInProgress},
		{name: "已完成可以评测", status: constant.WallStatusCompleted},
		{name: "已放弃也可以评测", status: constant.WallStatusDropped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReviewRepo{}
			svc := NewService[*model.BooksReview](
				constant.ArticleTypeBooks,
				repo,
				&fakeResolver{dbID: 3},
				&fakeStatusFinder{status: tt.status},
			)

			_, err := svc.Create(context.Background(), requester, "abc12345", &model.CreateReviewParams{
				Review:  "**精彩**的故事",
				Overall: 9,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("期望错误 %v, 实际 %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("创建失败: %v", err)
			}
			if repo.created.Username != "alice" {
				t.Errorf("username = %q, 期望 alice", repo.created.Username)
			}
			if repo.created.ArticleDBID != 3 {
				t.Errorf("articleDBID = %d, 期望 3", repo.created.ArticleDBID)
			}
			if !strings.Contains(repo.created.ReviewHTML, "<strong>精彩</strong>") {
				t.Errorf("Markdown 正文未被渲染: %q", repo.created.ReviewHTML)
			}
		})
	}
}

func TestService_Create_未登录(t *testing.T) {
	svc := NewService[*model.BooksReview](
		constant.ArticleTypeBooks,
		&fakeReviewRepo{},
		&fakeResolver{dbID: 1},
		&fakeStatusFinder{status: constant.WallStatusCompleted},
	)

	_, err := svc.Create(context.Background(), nil, "abc12345", &model.CreateReviewParams{Review: "x", Overall: 5})
	if !errors.Is(err, constant.ErrUnauthorized) {
		t.Fatalf("期望 ErrUnauthorized, 实际 %v", err)
	}
}

func TestService_Update_仅作者可改(t *testing.T) {
	existing := &model.BooksReview{ReviewCore: model.ReviewCore{Username: "alice"}}

	tests := []struct {
		name      string
		requester *model.Requester
		wantErr   error
	}{
		{name: "作者本人可以修改", requester: &model.Requester{Username: "alice", Role: "USER"}},
		{name: "其他用户被拒绝", requester: &model.Requester{Username: "bob", Role: "USER"}, wantErr: constant.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReviewRepo{existing: existing}
			svc := NewService[*model.BooksReview](
				constant.ArticleTypeBooks,
				repo,
				&fakeResolver{dbID: 1},
				&fakeStatusFinder{},
			)

			_, err := svc.Update(context.Background(), tt.requester, "review-id", &model.UpdateReviewParams{})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("期望错误 %v, 实际 %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("更新失败: %v", err)
			}
		})
	}
}

func TestService_Delete_作者或管理员(t *testing.T) {
	existing := &model.BooksReview{ReviewCore: model.ReviewCore{Username: "alice"}}

	tests := []struct {
		name      string
		requester *model.Requester
		wantErr   error
	}{
		{name: "作者本人可以删除", requester: &model.Requester{Username: "alice", Role: "USER"}},
		{name: "管理员可以代删", requester: &model.Requester{Username: "admin", Role: "ADMIN"}},
		{name: "其他用户被拒绝", requester: &model.Requester{Username: "bob", Role: "USER"}, wantErr: constant.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReviewRepo{existing: existing}
			svc := NewService[*model.BooksReview](
				constant.ArticleTypeBooks,
				repo,
				&fakeResolver{dbID: 1},
				&fakeStatusFinder{},
			)

			err := svc.Delete(context.Background(), tt.requester, "review-id")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("期望错误 %v, 实际 %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("删除失败: %v", err)
			}
			if !repo.deleted {
				t.Error("删除没有到达仓储层")
			}
		})
	}
}
