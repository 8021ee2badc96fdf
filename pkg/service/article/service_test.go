package article

import (
	"context"
	"errors"
	"testing"

	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

// fakeBookRepo 是 ArticleRepository[*model.Book] 的内存实现，
// 只覆盖服务层测试需要的行为。
type fakeBookRepo struct {
	created    *model.CreateArticleParams
	updated    *model.UpdateArticleParams
	existing   *model.Book
	updateResp *model.Book
}

func (f *fakeBookRepo) Create(_ context.Context, params *model.CreateArticleParams) (*model.Book, error) {
	f.created = params
	return &model.Book{ArticleCore: model.ArticleCore{
		Title:       params.Title,
		Slug:        params.Slug,
		Draft:       params.Draft,
		Accepted:    params.Accepted,
		Contributor: params.Contributor,
	}}, nil
}

func (f *fakeBookRepo) GetByIdentifierSlug(_ context.Context, _, _, _ string) (*model.Book, error) {
	if f.existing == nil {
		return nil, constant.ErrNotFound
	}
	return f.existing, nil
}

func (f *fakeBookRepo) FindDBID(_ context.Context, _ string) (uint, error) {
	return 1, nil
}

func (f *fakeBookRepo) Update(_ context.Context, _, _ string, params *model.UpdateArticleParams) (*model.Book, error) {
	f.updated = params
	return f.updateResp, nil
}

func (f *fakeBookRepo) Delete(_ context.Context, _, _ string) error { return nil }

func (f *fakeBookRepo) List(_ context.Context, _ *model.ListArticlesOptions) ([]*model.Book, int, error) {
	return nil, 0, nil
}

func (f *fakeBookRepo) ListDrafts(_ context.Context, _ string) ([]*model.Book, error) {
	return nil, nil
}

type fakeAwarder struct {
	username string
	delta    int
	calls    int
}

func (f *fakeAwarder) AddContributionPoints(_ context.Context, username string, delta int) error {
	f.username = username
	f.delta = delta
	f.calls++
	return nil
}

func TestService_Create_审核策略(t *testing.T) {
	tests := []struct {
		name         string
		requester    *model.Requester
		draft        bool
		wantDraft    bool
		wantAccepted bool
		wantErr      error
	}{
		{
			name:      "未登录拒绝创建",
			requester: nil,
			wantErr:   constant.ErrUnauthorized,
		},
		{
			name:         "普通用户的提交强制进入草稿",
			requester:    &model.Requester{Username: "alice", Role: "USER"},
			draft:        false,
			wantDraft:    true,
			wantAccepted: false,
		},
		{
			name:         "版主直接发布",
			requester:    &model.Requester{Username: "mod", Role: "MODERATOR"},
			draft:        false,
			wantDraft:    false,
			wantAccepted: true,
		},
		{
			name:         "管理员也可以主动存为草稿",
			requester:    &model.Requester{Username: "admin", Role: "ADMIN"},
			draft:        true,
			wantDraft:    true,
			wantAccepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookRepo{}
			svc := NewService[*model.Book](constant.ArticleTypeBooks, repo, nil)

			_, err := svc.Create(context.Background(), tt.requester, &model.CreateArticleParams{
				Title: "Dune Messiah",
				Draft: tt.draft,
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
			if repo.created.Draft != tt.wantDraft {
				t.Errorf("draft = %v, 期望 %v", repo.created.Draft, tt.wantDraft)
			}
			if repo.created.Accepted != tt.wantAccepted {
				t.Errorf("accepted = %v, 期望 %v", repo.created.Accepted, tt.wantAccepted)
			}
			if repo.created.Contributor != tt.requester.Username {
				t.Errorf("contributor = %q, 期望 %q", repo.created.Contributor, tt.requester.Username)
			}
			if repo.created.Slug != "dune-messiah" {
				t.Errorf("slug = %q, 期望 dune-messiah", repo.created.Slug)
			}
		})
	}
}

func TestService_Get_草稿可见性(t *testing.T) {
	draft := &model.Book{ArticleCore: model.ArticleCore{
		Draft:       true,
		Contributor: "alice",
	}}

	tests := []struct {
		name      string
		requester *model.Requester
		wantErr   error
	}{
		{name: "游客看不到草稿", requester: nil, wantErr: constant.ErrNotFound},
		{name: "其他用户看不到草稿", requester: &model.Requester{Username: "bob", Role: "USER"}, wantErr: constant.ErrNotFound},
		{name: "贡献者本人可见", requester: &model.Requester{Username: "alice", Role: "USER"}},
		{name: "版主可见", requester: &model.Requester{Username: "mod", Role: "MODERATOR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookRepo{existing: draft}
			svc := NewService[*model.Book](constant.ArticleTypeBooks, repo, nil)

			_, err := svc.Get(context.Background(), "abc12345", "some-slug", tt.requester)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("期望错误 %v, 实际 %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("获取失败: %v", err)
			}
		})
	}
}

func TestService_Update_草稿重新提交(t *testing.T) {
	repo := &fakeBookRepo{
		existing:   &model.Book{ArticleCore: model.ArticleCore{Accepted: true}},
		updateResp: &model.Book{ArticleCore: model.ArticleCore{Draft: true}},
	}
	svc := NewService[*model.Book](constant.ArticleTypeBooks, repo, nil)

	draft := true
	_, err := svc.Update(context.Background(), "abc12345", "some-slug", &model.UpdateArticleParams{Draft: &draft})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	if !repo.updated.ResetCreatedAt {
		t.Error("draft 置 true 时应重置 created_at")
	}
	if repo.updated.Accepted == nil || *repo.updated.Accepted {
		t.Error("draft 置 true 时 accepted 应随之置 false")
	}
}

func TestService_Update_过审奖励贡献点(t *testing.T) {
	tests := []struct {
		name           string
		before         *model.Book
		after          *model.Book
		wantAwardCalls int
	}{
		{
			name:           "首次过审触发奖励",
			before:         &model.Book{ArticleCore: model.ArticleCore{Accepted: false, Contributor: "alice"}},
			after:          &model.Book{ArticleCore: model.ArticleCore{Accepted: true, Contributor: "alice"}},
			wantAwardCalls: 1,
		},
		{
			name:           "已过审的更新不重复奖励",
			before:         &model.Book{ArticleCore: model.ArticleCore{Accepted: true, Contributor: "alice"}},
			after:          &model.Book{ArticleCore: model.ArticleCore{Accepted: true, Contributor: "alice"}},
			wantAwardCalls: 0,
		},
		{
			name:           "无贡献者时不奖励",
			before:         &model.Book{ArticleCore: model.ArticleCore{Accepted: false}},
			after:          &model.Book{ArticleCore: model.ArticleCore{Accepted: true}},
			wantAwardCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookRepo{existing: tt.before, updateResp: tt.after}
			awarder := &fakeAwarder{}
			svc := NewService[*model.Book](constant.ArticleTypeBooks, repo, awarder)

			accepted := true
			draft := false
			_, err := svc.Update(context.Background(), "abc12345", "some-slug", &model.UpdateArticleParams{
				Draft:    &draft,
				Accepted: &accepted,
			})
			if err != nil {
				t.Fatalf("更新失败: %v", err)
			}
			if awarder.calls != tt.wantAwardCalls {
				t.Fatalf("奖励调用次数 = %d, 期望 %d", awarder.calls, tt.wantAwardCalls)
			}
			if tt.wantAwardCalls > 0 {
				if awarder.username != "alice" || awarder.delta != ContributionAward {
					t.Errorf("奖励参数 = (%q, %d), 期望 (alice, %d)", awarder.username, awarder.delta, ContributionAward)
				}
			}
		})
	}
}
