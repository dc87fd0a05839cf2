// taskjohn es un cliente CLI del API, pensado para desarrollo y smoke tests.
// El token se pasa por flag o por env TASKJOHN_TOKEN (lo imprime signin).
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func (c *client) do(method, path string, body any) (int, []byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, strings.TrimRight(c.BaseURL, "/")+path, rd)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(body []byte) {
	var v any
	if json.Unmarshal(body, &v) == nil {
		p, _ := json.MarshalIndent(v, "", "  ")
		fmt.Println(string(p))
		return
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	var (
		baseURL = envOr("TASKJOHN_URL", "http://localhost:8080")
		token   = envOr("TASKJOHN_TOKEN", "")
	)

	cl := &client{HTTP: &http.Client{Timeout: 30 * time.Second}}

	root := &cobra.Command{
		Use:   "taskjohn",
		Short: "Cliente CLI del API de taskjohn",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cl.BaseURL = baseURL
			cl.Token = token
		},
	}
	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base del API (env TASKJOHN_URL)")
	root.PersistentFlags().StringVar(&token, "token", token, "Access token (env TASKJOHN_TOKEN)")

	signupCmd := &cobra.Command{
		Use:   "signup <username> <password>",
		Short: "Crear un usuario",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("POST", "/v1/auth/signup",
				map[string]string{"username": args[0], "password": args[1]})
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("signup: status=%d body=%s", status, body)
			}
			cl.print(body)
			return nil
		},
	}

	signinCmd := &cobra.Command{
		Use:   "signin <username> <password>",
		Short: "Autenticarse; imprime el access token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("POST", "/v1/auth/signin",
				map[string]string{"username": args[0], "password": args[1]})
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("signin: status=%d body=%s", status, body)
			}
			var out struct {
				AccessToken string `json:"accessToken"`
			}
			if err := json.Unmarshal(body, &out); err != nil {
				return err
			}
			fmt.Println(out.AccessToken)
			return nil
		},
	}

	tasksCmd := &cobra.Command{Use: "tasks", Short: "Operaciones de tareas (requiere --token)"}

	var listStatus, listSearch string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Listar tareas propias",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if listStatus != "" {
				q.Set("status", listStatus)
			}
			if listSearch != "" {
				q.Set("search", listSearch)
			}
			path := "/v1/tasks"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("list: status=%d body=%s", status, body)
			}
			cl.print(body)
			return nil
		},
	}
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filtrar por status (OPEN|IN_PROGRESS|DONE)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Substring sobre title/description")

	var createDesc string
	createCmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Crear una tarea (status OPEN)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("POST", "/v1/tasks",
				map[string]string{"title": args[0], "description": createDesc})
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("create: status=%d body=%s", status, body)
			}
			cl.print(body)
			return nil
		},
	}
	createCmd.Flags().StringVar(&createDesc, "desc", "", "Descripción opcional")

	statusCmd := &cobra.Command{
		Use:   "status <id> <OPEN|IN_PROGRESS|DONE>",
		Short: "Cambiar el status de una tarea propia",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("PATCH", "/v1/tasks/"+args[0]+"/status",
				map[string]string{"status": args[1]})
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("status: status=%d body=%s", status, body)
			}
			cl.print(body)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Borrar una tarea propia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("DELETE", "/v1/tasks/"+args[0], nil)
			if err != nil {
				return err
			}
			if status != http.StatusNoContent {
				return fmt.Errorf("rm: status=%d body=%s", status, body)
			}
			fmt.Println("ok")
			return nil
		},
	}

	tasksCmd.AddCommand(listCmd, createCmd, statusCmd, rmCmd)
	root.AddCommand(signupCmd, signinCmd, tasksCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
