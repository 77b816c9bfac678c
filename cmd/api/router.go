package main

import (
	interaction "ShortVid.com/cmd/api/handlers/interaction"
	relation "ShortVid.com/cmd/api/handlers/relation"
	user "ShortVid.com/cmd/api/handlers/user"
	video "ShortVid.com/cmd/api/handlers/video"
	"ShortVid.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz) {
	api := r.Group("/api")

	api.POST("/register", user.Register)
	api.POST("/login", user.LoginUser)
	api.POST("/upload", append(authfunc.Auth(), video.PublishVideo)...)
	api.GET("/notifications", append(authfunc.Auth(), user.NotificationList)...)

	videos := api.Group("/videos")
	videos.GET("", authfunc.OptionalTokenAuthFunc(), video.FeedList)
	videos.GET("/:id/comments", interaction.ListComments)
	videos.POST("/:id/like", append(authfunc.Auth(), interaction.LikeAction)...)
	videos.POST("/:id/bookmark", append(authfunc.Auth(), interaction.BookmarkAction)...)
	videos.POST("/:id/share", append(authfunc.Auth(), video.ShareVideo)...)
	videos.POST("/:id/comment", append(authfunc.Auth(), interaction.CreateComment)...)

	users := api.Group("/users")
	users.GET("/:id", authfunc.OptionalTokenAuthFunc(), user.GetUserInfo)
	users.GET("/:id/videos", authfunc.OptionalTokenAuthFunc(), video.VideoListByUser)
	users.GET("/:id/following", relation.FollowingList)
	users.GET("/:id/followers", relation.FollowerList)
	users.GET("/:id/friends", relation.FriendList)
	users.POST("/:id/follow", append(authfunc.Auth(), relation.RelationAction)...)
}
