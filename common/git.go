package common

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/FringeDweller/dots/internal"
)

const (
	defaultHost    = "github.com"
	gitClonePrefix = "git@"
	gitRepoSuffix  = ".git"
)

// Cloner fetches a git repository into a directory. A depth of zero clones the full history.
type Cloner interface {
	Clone(repoUrl, dir string, depth int) error
}

type GitCloner struct{}

type cloneRef struct {
	url  string
	base string
}

func processUrl(repoUrl string) (cloneRef, error) {
	var ref cloneRef
	repoUrl = strings.TrimSuffix(repoUrl, "/")
	components := strings.Split(repoUrl, "/")
	numComponents := len(components)
	if repoUrl == "" || numComponents == 0 {
		return ref, fmt.Errorf("unexpected repo URL: %s", repoUrl)
	}

	repoBase := components[numComponents-1]
	repoBase = strings.TrimSuffix(repoBase, gitRepoSuffix)
	ref.base = repoBase

	if strings.HasPrefix(repoUrl, gitClonePrefix) {
		ref.url = repoUrl
		return ref, nil
	}

	parsed, err := url.Parse(repoUrl)
	if err != nil {
		return ref, err
	}

	if parsed.Scheme != "" && parsed.Host != "" {
		if !strings.HasSuffix(repoUrl, gitRepoSuffix) {
			repoUrl += gitRepoSuffix
		}
		ref.url = repoUrl
		return ref, nil
	}

	if numComponents < 2 {
		return ref, fmt.Errorf("unexpected repo URL: %s", repoUrl)
	}

	// Assume given URL expects an SSH git clone from this point on.
	if numComponents == 2 {
		repoUrl = fmt.Sprintf("%s:%s", defaultHost, repoUrl)
	} else {
		// URL has host part, change first slash to colon.
		repoUrl = strings.Replace(repoUrl, "/", ":", 1)
	}
	ref.url = fmt.Sprintf("git@%s", repoUrl)
	if !strings.HasSuffix(ref.url, gitRepoSuffix) {
		ref.url += gitRepoSuffix
	}

	return ref, nil
}

// RepoBase returns the directory name a clone of repoUrl would get.
func RepoBase(repoUrl string) (string, error) {
	ref, err := processUrl(repoUrl)
	if err != nil {
		return "", err
	}

	return ref.base, nil
}

// Clone leaves an existing clone directory as is.
func (GitCloner) Clone(repoUrl, dir string, depth int) error {
	ref, err := processUrl(repoUrl)
	if err != nil {
		return err
	}

	_, err = os.Stat(dir)
	if err == nil {
		internal.Log.Debugf("Clone directory %s already exists", dir)
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	opt := git.CloneOptions{
		URL:   ref.url,
		Depth: depth,
	}

	internal.Log.Infof("Cloning %s into %s", ref.url, dir)
	_, err = git.PlainClone(dir, false, &opt)
	if err != nil {
		return fmt.Errorf("error cloning repo %s to %s: %v", repoUrl, dir, err)
	}

	return nil
}
