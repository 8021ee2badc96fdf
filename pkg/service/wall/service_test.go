package wall

import (
	"context"
	"errors"
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

// fakeWallRepo 是 WallRepository[*model.WallsBook] 的内存桩。
type fakeWallRepo struct {
	created   *model.CreateWallParams
	existing  *model.WallsBook
	createErr error
	deleted   bool
	updated   bool
}

func (f *fakeWallRepo) Create(_ context.Context, params *model.CreateWallParams) (*model.WallsBook, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = params
	return &model.WallsBook{WallCore: model.WallCore{Username: params.Username, Status: params.Status}}, nil
}

func (f *fakeWallRepo) GetByID(_ context.Context, _ string) (*model.WallsBook, error) {
	if f.existing == nil {
		return nil, constant.ErrNotFound
	}
	return f.existing, nil
}

func (f *fakeWallRepo) ListByUser(_ context.Context, _ string) ([]*model.WallsBook, error) {
	return nil, nil
}

func (f *fakeWallRepo) FindStatus(_ context.Context, _ string, _ uint) (string, error) {
	return "", nil
}

func (f *fakeWallRepo) Update(_ context.Context, _ string, _ *model.UpdateWallParams) (*model.WallsBook, error) {
	f.updated = true
	return f.existing, nil
}

func (f *fakeWallRepo) Delete(_ context.Context, _ string) error {
	f.deleted = true
	return nil
}

func (f *fakeWallRepo) StatsByUser(_ context.Context, _ string) (*model.WallStatusStats, error) {
	return &model.WallStatusStats{}, nil
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		requester *model.Requester
		resolver  *fakeResolver
		createErr error
		wantErr   error
	}{
		{
			name:     "未登录拒绝创建",
			resolver: &fakeResolver{dbID: 1},
			wantErr:  constant.ErrUnauthorized,
		},
		{
			name:      "作品不存在返回404",
			requester: &model.Requester{Username: "alice", Role: "USER"},
			resolver:  &fakeResolver{err: constant.ErrNotFound},
			wantErr:   constant.ErrNotFound,
		},
		{
			name:      "重复追踪返回冲突",
			requester: &model.Requester{Username: "alice", Role: "USER"},
			resolver:  &fakeResolver{dbID: 1},
			createErr: constant.ErrWallConflict,
			wantErr:   constant.ErrWallConflict,
		},
		{
			name:      "正常创建",
			requester: &model.Requester{Username: "alice", Role: "USER"},
			resolver:  &fakeResolver{dbID: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeWallRepo{createErr: tt.createErr}
			svc := NewService[*model.WallsBook](constant.ArticleTypeBooks, repo, tt.resolver)

			_, err := svc.Create(context.Background(), tt.requester, "abc12345", &model.CreateWallParams{
				Status: constant.WallStatusInProgress,
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
			if repo.created.ArticleDBID != 7 {
				t.Errorf("articleDBID = %d, 期望 7", repo.created.ArticleDBID)
			}
		})
	}
}

func TestService_Update_仅所有者可改(t *testing.T) {
	record := &model.WallsBook{WallCore: model.WallCore{Username: "alice"}}

	tests := []struct {
		name      string
		requester *model.Requester
		wantErr   error
	}{
		{name: "所有者本人可以修改", requester: &model.Requester{Username: "alice", Role: "USER"}},
		{name: "其他用户被拒绝", requester: &model.Requester{Username: "bob", Role: "USER"}, wantErr: constant.ErrForbidden},
		{name: "管理员也不能替用户改记录", requester: &model.Requester{Username: "admin", Role: "ADMIN"}, wantErr: constant.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeWallRepo{existing: record}
			svc := NewService[*model.WallsBook](constant.ArticleTypeBooks, repo, &fakeResolver{dbID: 1})

			_, err := svc.Update(context.Background(), tt.requester, "wall-id", &model.UpdateWallParams{})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("期望错误 %v, 实际 %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("更新失败: %v", err)
			}
			if !repo.updated {
				t.Error("更新没有到达仓储层")
			}
		})
	}
}

func TestService_Delete_所有者或管理员(t *testing.T) {
	record := &model.WallsBook{WallCore: model.WallCore{Username: "alice"}}

	tests := []struct {
		name      string
		requester *model.Requester
		wantErr   error
	}{
		{name: "所有者本人可以删除", requester: &model.Requester{Username: "alice", Role: "USER"}},
		{name: "管理员可以代删", requester: &model.Requester{Username: "admin", Role: "ADMIN"}},
		{name: "版主不在豁免范围", requester: &model.Requester{Username: "mod", Role: "MODERATOR"}, wantErr: constant.ErrForbidden},
		{name: "其他用户被拒绝", requester: &model.Requester{Username: "bob", Role: "USER"}, wantErr: constant.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeWallRepo{existing: record}
			svc := NewService[*model.WallsBook](constant.ArticleTypeBooks, repo, &fakeResolver{dbID: 1})

			err := svc.Delete(context.Background(), tt.requester, "wall-id")
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
