package common

import (
	"reflect"
	"testing"
)

func Test_processUrl(t *testing.T) {
	type args struct {
		repoUrl string
	}
	tests := []struct {
		name    string
		args    args
		want    cloneRef
		wantErr bool
	}{
		{
			name: "URL with scheme and host",
			args: args{repoUrl: "https://aur.archlinux.org/paru.git"},
			want: cloneRef{
				url:  "https://aur.archlinux.org/paru.git",
				base: "paru",
			},
		},
		{
			name: "URL with scheme and host, no git suffix ",
			args: args{repoUrl: "https://github.com/adi1090x/rofi"},
			want: cloneRef{
				url:  "https://github.com/adi1090x/rofi.git",
				base: "rofi",
			},
		},
		{
			name: "URL with no scheme",
			args: args{repoUrl: "github.com/adi1090x/rofi"},
			want: cloneRef{
				url:  "git@github.com:adi1090x/rofi.git",
				base: "rofi",
			},
		},
		{
			name: "URL with no host",
			args: args{repoUrl: "adi1090x/rofi"},
			want: cloneRef{
				url:  "git@github.com:adi1090x/rofi.git",
				base: "rofi",
			},
		},
		{
			name: "SSH URL",
			args: args{repoUrl: "git@github.com:adi1090x/rofi.git"},
			want: cloneRef{
				url:  "git@github.com:adi1090x/rofi.git",
				base: "rofi",
			},
		},
		{
			name:    "Bare name",
			args:    args{repoUrl: "rofi"},
			wantErr: true,
		},
		{
			name:    "Empty",
			args:    args{repoUrl: ""},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := processUrl(tt.args.repoUrl)
			if (err != nil) != tt.wantErr {
				t.Errorf("processUrl() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("processUrl() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRepoBase(t *testing.T) {
	base, err := RepoBase("https://github.com/adi1090x/rofi.git")
	if err != nil {
		t.Fatalf("RepoBase() error = %v", err)
	}
	if base != "rofi" {
		t.Errorf("RepoBase() got = %s, want rofi", base)
	}
}

func TestGitClonerExistingDir(t *testing.T) {
	dir := t.TempDir()
	if err := (GitCloner{}).Clone("https://aur.archlinux.org/paru.git", dir, 0); err != nil {
		t.Errorf("Clone() into existing dir error = %v", err)
	}
}
