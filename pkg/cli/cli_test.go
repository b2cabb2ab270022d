package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

func init() {
	color.NoColor = true
}

func newRoot(f *Flags) *cobra.Command {
	root := RootCmd(f)
	root.AddCommand(TasksCmd(f), ToggleCmd(f), OrderCmd(f), ExportCmd(f))
	return root
}

func backend(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/task/api/user/:userId", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []gin.H{
			{"_id": "t1", "taskTitle": "Task for " + c.Param("userId"), "userStatus": "pending"},
		}})
	})
	r.PATCH("/task/api/tasks/user-status/:taskId", func(c *gin.Context) {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"task": gin.H{"_id": c.Param("taskId"), "taskTitle": "Done", "userStatus": body.Status}})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	args = append(args, "--config", filepath.Join(home, "config.json"))
	root := newRoot(&Flags{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTasksCommand(t *testing.T) {
	srv := backend(t)
	out, err := execute(t, "tasks", "--api", srv.URL, "--user", "u1", "--token", "tok")
	if err != nil {
		t.Fatalf("tasks failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Task for u1") || !strings.Contains(out, "Pending: 1") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestUserFromTokenFlag(t *testing.T) {
	srv := backend(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": "u9"}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	out, err := execute(t, "tasks", "--api", srv.URL, "--token", token)
	if err != nil {
		t.Fatalf("tasks failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Task for u9") {
		t.Errorf("Expected user id from token, got:\n%s", out)
	}
}

func TestToggleCommand(t *testing.T) {
	srv := backend(t)
	out, err := execute(t, "toggle", "t1", "--api", srv.URL, "--user", "u1", "--token", "tok")
	if err != nil {
		t.Fatalf("toggle failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "marked as completed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestMissingUser(t *testing.T) {
	t.Setenv("PODASH_USER_ID", "")
	t.Setenv("PODASH_TOKEN", "")
	_, err := execute(t, "tasks", "--api", "http://127.0.0.1:1")
	if err == nil || !strings.Contains(err.Error(), "no user id") {
		t.Errorf("Expected missing user error, got %v", err)
	}
}

func TestExportNeedsTarget(t *testing.T) {
	_, err := execute(t, "export", "--user", "u1")
	if err == nil {
		t.Errorf("Expected error without --file or --dsn")
	}
}

func TestExportSnapshotCommand(t *testing.T) {
	srv := backend(t)
	dsn := filepath.Join(t.TempDir(), "snap.db")
	out, err := execute(t, "export", "--dsn", dsn, "--api", srv.URL, "--user", "u1", "--token", "tok")
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Successfully saved 1 task(s)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
