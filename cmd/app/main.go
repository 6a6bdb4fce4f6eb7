package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sukiejosh/heyfood-assesment-backend/internal/config"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/routes"
)

func main() {
	// ログ設定を変更
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("サーバーを起動しています...")

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	// ルーターをセットアップ
	router := routes.SetupRouter(cfg, db)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// シグナルを受けたらサーバーを止めてデータベース接続を閉じる
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("シャットダウンしています...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("サーバーの停止に失敗しました: %v", err)
		}
		if err := config.CloseDB(db); err != nil {
			log.Printf("データベース接続のクローズに失敗しました: %v", err)
		}
	}()

	// サーバー起動
	log.Printf("サーバーを開始しています... PORT: %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
	log.Println("サーバーを停止しました")
}
